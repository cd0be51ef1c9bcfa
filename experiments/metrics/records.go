package metrics

import (
	"time"

	"adversary/searcher"
)

// AgentConfig identifies one searcher configuration under test.
type AgentConfig struct {
	ID    int
	Depth int
}

// MoveMetric captures the search behind one agent decision.
type MoveMetric struct {
	Step   int
	Player int
	searcher.SearchMetrics
}

// GameRecord summarizes one completed game of a match-up.
type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID
	Agent2    int // AgentConfig.ID
	Winner    int // player index, -1 if undecided
	Decisions int
	Duration  time.Duration
}

// MoveRecord ties a MoveMetric to the game it occurred in.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
