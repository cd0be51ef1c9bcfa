package engine

import (
	"adversary/experiments/metrics"
	"adversary/game"
	"adversary/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Agent picks an action for one player at a turn node and reports the
// work the decision took.
type Agent interface {
	FindAction(state game.State) (game.Action, searcher.SearchMetrics)
}

// SearchAgent backs a player with the expectiminimax searcher.
type SearchAgent struct {
	player   int
	depth    int
	searcher *searcher.Searcher
}

func NewSearchAgent(player, depth int, options ...searcher.Option) SearchAgent {
	options = append(options, searcher.WithMetrics())
	return SearchAgent{
		player:   player,
		depth:    depth,
		searcher: searcher.New(options...),
	}
}

func (a SearchAgent) FindAction(state game.State) (game.Action, searcher.SearchMetrics) {
	action := a.searcher.ChooseAction(state, a.player, a.depth)
	return action, a.searcher.Metrics()
}

// MaxMoves caps runaway games whose states never go terminal.
const MaxMoves = 1000

// Engine plays one game to completion between in-process agents, one
// per player. Chance nodes are resolved by sampling an outcome
// according to its probability.
type Engine struct {
	State  game.State
	Agents []Agent
	rng    *rand.Rand
}

func LocalEngine(state game.State, agents []Agent, rng *rand.Rand) *Engine {
	if state == nil {
		panic("engine needs a starting state")
	}
	if len(agents) == 0 {
		panic("engine needs at least one agent")
	}
	return &Engine{
		State:  state,
		Agents: agents,
		rng:    rng,
	}
}

// Run executes the game loop until the state is terminal or MaxMoves
// is hit. It returns the winning player by final evaluation, or -1 for
// an undecided game, along with one metric per agent decision.
func (e *Engine) Run() (int, []metrics.MoveMetric) {
	var moveMetrics []metrics.MoveMetric

	moves := 0
	for moves < MaxMoves {
		actions := e.State.PossibleActions()
		if len(actions) == 0 { // Game over
			break
		}

		var action game.Action
		turn := e.State.Turn()
		if turn == game.Chance {
			action = sample(actions, e.rng)
			log.Debug().Int("move", moves+1).Msgf("chance resolved to %v", action)
		} else {
			if turn >= len(e.Agents) {
				panic("no agent for player on turn")
			}
			var searched searcher.SearchMetrics
			action, searched = e.Agents[turn].FindAction(e.State)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:          moves + 1,
				Player:        turn,
				SearchMetrics: searched,
			})
			log.Debug().Int("move", moves+1).Int("player", turn).Msgf("played %v", action)
		}

		e.State = e.State.Apply(action)
		moves++
	}

	winner := e.winner()
	log.Info().Int("moves", moves).Int("winner", winner).Msg("game finished")
	return winner, moveMetrics
}

// winner is the player with the highest final score, or -1 if the game
// never went terminal.
func (e *Engine) winner() int {
	if len(e.State.PossibleActions()) > 0 {
		return -1
	}

	value := e.State.Evaluate()
	winner := 0
	for player := 1; player < value.Players(); player++ {
		if value.Score(player) > value.Score(winner) {
			winner = player
		}
	}
	return winner
}

// sample draws one action according to the actions' probabilities.
func sample(actions []game.Action, rng *rand.Rand) game.Action {
	total := 0.0
	for _, action := range actions {
		total += action.Probability()
	}

	var draw float64
	if rng == nil {
		draw = rand.Float64() * total
	} else {
		draw = rng.Float64() * total
	}

	for _, action := range actions {
		draw -= action.Probability()
		if draw < 0 {
			return action
		}
	}
	return actions[len(actions)-1] // Rounding leftovers land on the last outcome
}
