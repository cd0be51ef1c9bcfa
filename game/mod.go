package game

// Action is a transition out of a State: either a deterministic move a
// player can pick, or one outcome of a random event. Implementations
// must be immutable.
type Action interface {
	// Probability returns the chance of this action occurring, between
	// 0 and 1. It is only consulted below chance nodes; the searcher
	// ignores it on deterministic turns.
	Probability() float64
}

// State is one position of the game. Implementations supply the four
// game-specific hooks the searcher needs; everything else (depth
// bookkeeping, value propagation, action selection) is generic.
//
// State should be immutable - Apply always returns a new copy.
type State interface {
	// PossibleActions returns every action available from this state.
	// For a chance state each action is one outcome of the random
	// event, carrying its probability. An empty or nil slice marks the
	// state as terminal.
	PossibleActions() []Action

	// Evaluate scores this state, one non-negative score per player.
	// Higher is better for that player.
	Evaluate() *Value

	// Turn returns the index of the player who acts from this state,
	// or Chance if a random event resolves next.
	Turn() int

	// Apply plays an action and returns the resulting state. It must
	// not mutate the receiver.
	Apply(Action) State
}

// Chance is the Turn value marking a state resolved by a random event
// rather than a player's choice.
const Chance = -1
