// Package pig implements the dice game Pig for any number of players.
//
// On their turn a player repeatedly rolls a die, accumulating a turn
// total, and may hold at any point to bank it. Rolling a 1 forfeits
// the turn total and passes the turn. First player to bank the target
// score wins. The deciding states are turn nodes and each pending roll
// is a chance node with six equally likely outcomes, which makes the
// game a compact workout for the searcher.
package pig

import "adversary/game"

// Move is a player's decision on their turn.
type Move int

const (
	Roll Move = iota
	Hold
)

// Probability is unused on deterministic moves; the searcher only
// consults it below chance nodes.
func (m Move) Probability() float64 {
	return 1
}

func (m Move) String() string {
	if m == Roll {
		return "roll"
	}
	return "hold"
}

// Face is one outcome of a pending die roll, 1 through 6.
type Face int

func (f Face) Probability() float64 {
	return 1.0 / 6
}

// State is one position of a Pig game. It is immutable: Apply returns
// a fresh copy.
type State struct {
	banked    []int
	turnTotal int
	player    int
	rolling   bool // a die roll resolves next
	target    int
}

// NewGame starts a Pig game where the first of players players to bank
// target points wins. Player 0 moves first.
func NewGame(players, target int) *State {
	return &State{
		banked: make([]int, players),
		target: target,
	}
}

func (s *State) PossibleActions() []game.Action {
	if s.Winner() >= 0 {
		return nil
	}
	if s.rolling {
		return []game.Action{Face(1), Face(2), Face(3), Face(4), Face(5), Face(6)}
	}
	if s.turnTotal == 0 { // Nothing to bank yet
		return []game.Action{Roll}
	}
	return []game.Action{Roll, Hold}
}

// Evaluate scores each player by their banked points, crediting the
// player on turn half of the unbanked turn total since a 1 would still
// forfeit it. A decided game scores the winner a flat double target
// instead, so a certain win outranks any gamble for overshoot.
func (s *State) Evaluate() *game.Value {
	scores := make([]float64, len(s.banked))
	for i, banked := range s.banked {
		scores[i] = float64(banked)
	}
	if winner := s.Winner(); winner >= 0 {
		scores[winner] = float64(2 * s.target)
	} else {
		scores[s.player] += float64(s.turnTotal) / 2
	}
	return game.NewValueFromScores(scores)
}

func (s *State) Turn() int {
	if s.rolling {
		return game.Chance
	}
	return s.player
}

func (s *State) Apply(action game.Action) game.State {
	next := s.copy()
	switch a := action.(type) {
	case Move:
		if a == Roll {
			next.rolling = true
		} else {
			next.banked[next.player] += next.turnTotal
			next.passTurn()
		}
	case Face:
		next.rolling = false
		if a == 1 {
			next.passTurn()
		} else {
			next.turnTotal += int(a)
		}
	default:
		panic("pig: unexpected action type")
	}
	return next
}

// Winner returns the index of the player who has banked the target
// score, or -1 while the game is still running.
func (s *State) Winner() int {
	for i, banked := range s.banked {
		if banked >= s.target {
			return i
		}
	}
	return -1
}

// Player returns whose turn it is, even while a roll is pending.
func (s *State) Player() int {
	return s.player
}

// Banked returns a copy of every player's banked score.
func (s *State) Banked() []int {
	banked := make([]int, len(s.banked))
	copy(banked, s.banked)
	return banked
}

// TurnTotal returns the points accumulated this turn but not banked.
func (s *State) TurnTotal() int {
	return s.turnTotal
}

func (s *State) copy() *State {
	banked := make([]int, len(s.banked))
	copy(banked, s.banked)
	return &State{
		banked:    banked,
		turnTotal: s.turnTotal,
		player:    s.player,
		rolling:   s.rolling,
		target:    s.target,
	}
}

func (s *State) passTurn() {
	s.turnTotal = 0
	s.player = (s.player + 1) % len(s.banked)
}
