package engine

import (
	"testing"

	"adversary/game"
	"adversary/game/pig"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fixedAction float64

func (a fixedAction) Probability() float64 {
	return float64(a)
}

func TestSample(t *testing.T) {
	t.Run("always drawing a certain outcome", func(t *testing.T) {
		certain := fixedAction(1.0)
		never := fixedAction(0.0)
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 20; i++ {
			got := sample([]game.Action{certain, never}, rng)
			require.Equal(t, certain, got, "A probability-1 outcome should always be drawn")
		}
	})

	t.Run("drawing outcomes roughly by weight", func(t *testing.T) {
		rare := fixedAction(0.1)
		common := fixedAction(0.9)
		rng := rand.New(rand.NewSource(1))

		counts := map[game.Action]int{}
		for i := 0; i < 1000; i++ {
			counts[sample([]game.Action{rare, common}, rng)]++
		}

		require.Greater(t, counts[common], counts[rare], "The heavier outcome should dominate")
		require.Greater(t, counts[rare], 0, "The light outcome should still appear")
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing a game of Pig to completion", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		agents := []Agent{
			NewSearchAgent(0, 3),
			NewSearchAgent(1, 3),
		}
		e := LocalEngine(pig.NewGame(2, 15), agents, rng)

		winner, moveMetrics := e.Run()

		require.Contains(t, []int{0, 1}, winner, "A finished game should have a winner")
		require.Empty(t, e.State.PossibleActions(), "Final state should be terminal")
		require.NotEmpty(t, moveMetrics, "Agent decisions should be recorded")
		for _, m := range moveMetrics {
			require.Contains(t, []int{0, 1}, m.Player, "Metrics should name the deciding player")
			require.Positive(t, m.Step)
		}
	})

	t.Run("stopping an endless game at the move cap", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		agents := []Agent{
			NewSearchAgent(0, 1),
			NewSearchAgent(1, 1),
		}
		// A target this high cannot be banked within the move cap.
		e := LocalEngine(pig.NewGame(2, 1<<30), agents, rng)

		winner, _ := e.Run()

		require.Equal(t, -1, winner, "An undecided game should have no winner")
		require.NotEmpty(t, e.State.PossibleActions(), "State should still be live at the cap")
	})

	t.Run("rejecting a nil starting state", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, []Agent{NewSearchAgent(0, 1)}, nil)
		})
	})

	t.Run("rejecting an empty agent list", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(pig.NewGame(2, 10), nil, nil)
		})
	})
}
