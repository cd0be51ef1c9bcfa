package searcher

import (
	"testing"

	"adversary/game"

	"github.com/stretchr/testify/require"
)

type mockAction struct {
	id   int
	prob float64
}

func (a mockAction) Probability() float64 {
	return a.prob
}

type edge struct {
	action game.Action
	child  *mockState
}

type mockState struct {
	turn    int
	scores  []float64
	edges   []edge
	applies int // Apply calls seen by this state
	evals   int // Evaluate calls seen by this state
}

func (m *mockState) PossibleActions() []game.Action {
	actions := make([]game.Action, len(m.edges))
	for i, e := range m.edges {
		actions[i] = e.action
	}
	return actions
}

func (m *mockState) Evaluate() *game.Value {
	m.evals++
	return game.NewValueFromScores(m.scores)
}

func (m *mockState) Turn() int {
	return m.turn
}

func (m *mockState) Apply(action game.Action) game.State {
	m.applies++
	for _, e := range m.edges {
		if e.action == action {
			return e.child
		}
	}
	panic("mockState: unknown action")
}

func TestExpand(t *testing.T) {
	t.Run("stamping each child with its incoming action and depth", func(t *testing.T) {
		childA := &mockState{}
		childB := &mockState{}
		state := &mockState{
			turn: 0,
			edges: []edge{
				{action: mockAction{id: 0}, child: childA},
				{action: mockAction{id: 1}, child: childB},
			},
		}

		got := expand(state, state.PossibleActions(), 3)

		require.Len(t, got, 2, "Should produce one child per action")
		require.Equal(t, mockAction{id: 0}, got[0].action, "Child should record its incoming action")
		require.Equal(t, mockAction{id: 1}, got[1].action, "Child should record its incoming action")
		require.Equal(t, 3, got[0].depth, "Child should carry the stamped depth")
		require.Equal(t, 3, got[1].depth, "Child should carry the stamped depth")
		require.Same(t, childA, got[0].state.(*mockState))
		require.Same(t, childB, got[1].state.(*mockState))
	})
}
