package searcher

import "adversary/game"

// Progress describes one evaluated top-level branch of a search.
type Progress struct {
	Branch int // index of the branch, starting at 0
	Total  int // number of top-level branches
	Action game.Action
	Score  float64 // calculated score for the searching player
	Depth  int     // depth at which the branch's value was determined
}

// Observer receives a Progress report after each top-level branch is
// evaluated, in exploration order. It is purely informational: the
// searcher returns the same action whether or not an observer is set.
type Observer func(Progress)
