package searcher

import "adversary/game"

// evaluate returns the expectiminimax value of n, expanding its
// subtree depth-first to at most maxDepth. Turn nodes propagate the
// acting player's best child value unchanged, depth tag included.
// Chance nodes scale each child value by its outcome probability and
// element-wise sum them; the aggregate carries depth 0, not any
// child's depth. That asymmetry is long-standing behavior and is
// locked in by tests rather than corrected here.
func (s *Searcher) evaluate(n *node, maxDepth int) *game.Value {
	if n.depth == maxDepth {
		return s.leaf(n)
	}

	actions := n.state.PossibleActions()
	if len(actions) == 0 { // Terminal before the depth limit
		return s.leaf(n)
	}

	children := expand(n.state, actions, n.depth+1)
	s.metrics.AddExpansions(len(children))

	values := make([]*game.Value, len(children))
	for i, child := range children {
		values[i] = s.evaluate(child, maxDepth)
	}

	if turn := n.state.Turn(); turn != game.Chance {
		return values[game.BestIndex(values, turn, s.rng)]
	}

	// Probability-weighted expectation over the random outcomes.
	for i, value := range values {
		value.Scale(actions[i].Probability())
	}
	return game.WeightedSum(values)
}

// leaf scores n with the game's evaluation hook and stamps the node's
// depth on the result. This is the only origin of a meaningful depth
// tag; every turn node above just passes it along.
func (s *Searcher) leaf(n *node) *game.Value {
	s.metrics.AddLeaf()
	value := n.state.Evaluate()
	value.SetDepth(n.depth)
	return value
}
