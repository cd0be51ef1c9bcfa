package searcher

import "adversary/game"

// node ties a game state to its position in the search tree. The state
// itself knows nothing about the search: depth and the incoming action
// are stamped exactly once, by whoever creates the node, and never
// change. Nodes hold no reference back to their parent, so each
// subtree is owned top-down with no sharing.
type node struct {
	state game.State
	// action is the transition that produced this state from its
	// parent; nil on a sub-root.
	action game.Action
	depth  int
}

// expand applies every action to state and wraps each resulting child
// state in a node stamped with its incoming action and childDepth.
// Apply must not mutate state, so the original node stays valid while
// its children are explored.
func expand(state game.State, actions []game.Action, childDepth int) []*node {
	children := make([]*node, len(actions))
	for i, action := range actions {
		children[i] = &node{
			state:  state.Apply(action),
			action: action,
			depth:  childDepth,
		}
	}
	return children
}
