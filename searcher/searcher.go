package searcher

import (
	"adversary/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// WithRand sets the random source used to break exact score ties.
// Inject a seeded source for reproducible searches; the default is the
// shared package-level source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithObserver registers a callback invoked after each top-level
// branch is evaluated. Observation never affects the chosen action.
func WithObserver(observer Observer) Option {
	return func(s *Searcher) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithMetrics makes the searcher count expansions and leaf
// evaluations, available from Metrics after each search.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

// Searcher picks the best action for a player by exhaustive
// depth-limited expectiminimax. It is stateless between searches apart
// from its random source and metrics; one Searcher can serve many
// positions in sequence.
type Searcher struct {
	rng      *rand.Rand
	observer Observer
	metrics  Collector
	last     SearchMetrics
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ChooseAction returns the best action for player from root, searching
// depth plies ahead. A nil root or a root with no possible actions
// yields nil. A depth below 1 is clamped to 1. A forced move (exactly
// one possible action) is returned directly without expanding the
// tree.
func (s *Searcher) ChooseAction(root game.State, player int, depth int) game.Action {
	if root == nil {
		return nil
	}
	if depth <= 0 {
		depth = 1
	}

	actions := root.PossibleActions()
	if len(actions) == 0 { // No legal move exists
		return nil
	}
	if len(actions) == 1 { // Forced move
		return actions[0]
	}

	s.metrics.Start()

	// Each top-level child roots its own subtree at depth 0 and is
	// searched one ply shallower than the full budget.
	children := expand(root, actions, 0)
	s.metrics.AddExpansions(len(children))

	values := make([]*game.Value, len(children))
	for i, child := range children {
		values[i] = s.evaluate(child, depth-1)

		score := values[i].CalculatedScore(player)
		log.Debug().
			Int("branch", i+1).
			Int("total", len(children)).
			Float64("score", score).
			Int("depth", values[i].Depth()).
			Msg("evaluated branch")
		if s.observer != nil {
			s.observer(Progress{
				Branch: i,
				Total:  len(children),
				Action: child.action,
				Score:  score,
				Depth:  values[i].Depth(),
			})
		}
	}

	best := game.BestIndex(values, player, s.rng)
	s.last = s.metrics.Complete()
	return children[best].action
}

// Metrics returns the counters collected during the last ChooseAction
// call. Zero unless the searcher was built with WithMetrics.
func (s *Searcher) Metrics() SearchMetrics {
	return s.last
}
