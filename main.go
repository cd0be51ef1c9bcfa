package main

import (
	"fmt"
	"os"

	"adversary/engine"
	"adversary/experiments"
	"adversary/game/pig"
	"adversary/searcher"

	"github.com/caarlos0/env/v11"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type config struct {
	Players    int    `env:"PLAYERS" envDefault:"2"`
	Target     int    `env:"TARGET" envDefault:"25"`
	Depth      int    `env:"DEPTH" envDefault:"4"`
	Games      int    `env:"GAMES" envDefault:"1"`
	Seed       uint64 `env:"SEED" envDefault:"1"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	Experiment bool   `env:"EXPERIMENT" envDefault:"false"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.Experiment {
		if err := experiments.RunDepthToStrength(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	runMatch(cfg)
}

// runMatch plays cfg.Games games of Pig between identical search
// agents and prints a styled per-game summary.
func runMatch(cfg config) {
	output := termenv.NewOutput(os.Stdout)
	rng := rand.New(rand.NewSource(cfg.Seed))

	wins := make([]int, cfg.Players)
	for i := 0; i < cfg.Games; i++ {
		agents := make([]engine.Agent, cfg.Players)
		for player := range agents {
			agents[player] = engine.NewSearchAgent(player, cfg.Depth, searcher.WithRand(rng))
		}

		e := engine.LocalEngine(pig.NewGame(cfg.Players, cfg.Target), agents, rng)
		winner, moveMetrics := e.Run()

		final := e.State.(*pig.State)
		line := fmt.Sprintf("game %d: player %d wins %v after %d decisions",
			i+1, winner, final.Banked(), len(moveMetrics))
		fmt.Fprintln(output, output.String(line).Foreground(output.Color("10")))

		if winner >= 0 {
			wins[winner]++
		}
	}

	summary := fmt.Sprintf("wins by player: %v", wins)
	fmt.Fprintln(output, output.String(summary).Bold())
}
