// Package experiments measures how search depth translates into
// playing strength, by pitting a fixed-depth baseline agent against
// progressively deeper ones over repeated games of Pig.
package experiments

import (
	"time"

	"adversary/engine"
	"adversary/experiments/metrics"
	"adversary/game/pig"
	"adversary/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumGames    = 20 // Per match up
	TargetScore = 25
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
	{ID: 5, Depth: 5},
}

// RunDepthToStrength plays every depth config against a depth-2
// baseline and stores per-game and per-decision records as CSV.
func RunDepthToStrength() error {
	baseline := metrics.AgentConfig{ID: 0, Depth: 2}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	configs := append([]metrics.AgentConfig{baseline}, depthConfigs...)
	return runExperiment("depth_to_strength", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	log.Info().Msgf("starting experiment %s...", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().Msgf("starting matchup between agent%d and agent%d...", matchUp[0].ID, matchUp[1].ID)
		for i := 0; i < NumGames; i++ {
			gameID++
			// One seed per game keeps every run reproducible
			rng := rand.New(rand.NewSource(uint64(gameID)))
			agents := []engine.Agent{
				engine.NewSearchAgent(0, matchUp[0].Depth, searcher.WithRand(rng)),
				engine.NewSearchAgent(1, matchUp[1].Depth, searcher.WithRand(rng)),
			}
			e := engine.LocalEngine(pig.NewGame(2, TargetScore), agents, rng)

			start := time.Now()
			winner, moveMetrics := e.Run()

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        gameID,
				Agent1:    matchUp[0].ID,
				Agent2:    matchUp[1].ID,
				Winner:    winner,
				Decisions: len(moveMetrics),
				Duration:  time.Since(start),
			})
			for _, moveMetric := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameID,
					MoveMetric: moveMetric,
				})
			}
			log.Info().Msgf("completed game %d of %d with winner: player %d", i+1, NumGames, winner)
		}
		log.Info().Msg("completed matchup")
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return err
	}
	log.Info().Msg("stored move records")

	log.Info().Msgf("completed experiment %s", name)
	return nil
}
