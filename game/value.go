package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Value holds one predicted score per player for a state, plus the
// search depth at which the prediction was made. Scores never go
// negative: every mutator clamps at zero.
type Value struct {
	scores []float64
	// depth breaks ties between equally scored values: the shallower
	// prediction wins. It never participates in score comparison.
	depth int
}

// NewValue returns a value for players players, all scores zero.
func NewValue(players int) *Value {
	return &Value{scores: make([]float64, players)}
}

// NewValueFromScores returns a value with one score per element of
// scores. Negative inputs are clamped to zero.
func NewValueFromScores(scores []float64) *Value {
	v := NewValue(len(scores))
	for i, score := range scores {
		v.SetScore(i, score)
	}
	return v
}

// WeightedSum element-wise adds the given values into a new one. It is
// the aggregation step for chance nodes, after each child value has
// been scaled by its outcome probability. The result carries depth 0,
// not any child's depth. Returns nil if values is empty.
func WeightedSum(values []*Value) *Value {
	if len(values) == 0 {
		return nil
	}
	sum := NewValue(values[0].Players())
	for _, v := range values {
		floats.Add(sum.scores, v.scores)
	}
	return sum
}

// Players returns the number of scores this value holds.
func (v *Value) Players() int {
	return len(v.scores)
}

// Score returns player's raw score, or NaN if player is out of range.
func (v *Value) Score(player int) float64 {
	if !v.legalPlayer(player) {
		return math.NaN()
	}
	return v.scores[player]
}

// CalculatedScore returns player's score divided by the sum of all
// other players' scores. If no other player has any points the raw
// score is returned, so a lone scorer still ranks above zero values.
// Out of range players score 0.
func (v *Value) CalculatedScore(player int) float64 {
	if !v.legalPlayer(player) {
		return 0
	}
	others := floats.Sum(v.scores) - v.scores[player]
	if others == 0 {
		return v.scores[player]
	}
	return v.scores[player] / others
}

// SetScore sets player's score to score, clamped at zero. Does nothing
// if player is out of range.
func (v *Value) SetScore(player int, score float64) {
	if v.legalPlayer(player) {
		v.scores[player] = math.Max(0, score)
	}
}

// ChangeScore adds delta to player's score, clamping the result at
// zero. Does nothing if player is out of range.
func (v *Value) ChangeScore(player int, delta float64) {
	if v.legalPlayer(player) {
		v.SetScore(player, v.scores[player]+delta)
	}
}

// AdjustScore multiplies player's score by multiplier, clamping the
// result at zero. Does nothing if player is out of range.
func (v *Value) AdjustScore(player int, multiplier float64) {
	if v.legalPlayer(player) {
		v.SetScore(player, v.scores[player]*multiplier)
	}
}

// Scale multiplies every score by weight and re-clamps at zero, so a
// negative weight zeroes the whole vector. Used to weight a chance
// outcome by its probability.
func (v *Value) Scale(weight float64) {
	floats.Scale(weight, v.scores)
	for i, score := range v.scores {
		v.scores[i] = math.Max(0, score)
	}
}

// Depth returns the search depth at which this value was determined.
func (v *Value) Depth() int {
	return v.depth
}

// SetDepth records the search depth at which this value was determined.
func (v *Value) SetDepth(depth int) {
	v.depth = depth
}

func (v *Value) legalPlayer(player int) bool {
	return player >= 0 && player < len(v.scores)
}

func (v *Value) String() string {
	return fmt.Sprintf("game.Value%v depth=%d", v.scores, v.depth)
}

// BestIndex returns the index of the value in values that is best for
// player: the one with the highest calculated score. Score comparison
// is exact float equality; ties can be missed through rounding, which
// is accepted. When several values tie on score and depths differ
// across the input, the shallowest of the tied set wins. Any remaining
// tie is broken uniformly at random using rng (the package-level
// source if rng is nil). Returns -1 if values is empty.
func BestIndex(values []*Value, player int, rng *rand.Rand) int {
	if len(values) == 0 {
		return -1
	}
	if len(values) == 1 {
		return 0
	}

	best := values[0].CalculatedScore(player)
	indexes := []int{0}
	uniformDepth := values[0].Depth()
	differentDepths := false
	for i := 1; i < len(values); i++ {
		score := values[i].CalculatedScore(player)
		if values[i].Depth() != uniformDepth {
			differentDepths = true
		}
		if score == best {
			indexes = append(indexes, i)
		} else if score > best {
			best = score
			indexes = []int{i}
		}
	}

	// Prefer the outcome that resolves soonest when scores tie.
	if differentDepths {
		tied := indexes
		indexes = []int{}
		bestDepth := values[tied[0]].Depth()
		for _, i := range tied {
			depth := values[i].Depth()
			if depth == bestDepth {
				indexes = append(indexes, i)
			} else if depth < bestDepth {
				bestDepth = depth
				indexes = []int{i}
			}
		}
	}

	if len(indexes) == 1 {
		return indexes[0]
	}
	if rng == nil {
		return indexes[rand.Intn(len(indexes))]
	}
	return indexes[rng.Intn(len(indexes))]
}
