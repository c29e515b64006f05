package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tablut/config"
	"tablut/engine"
	"tablut/experiments"
	"tablut/experiments/metrics"
	"tablut/meta"
	"tablut/player"
)

func main() {
	cfg := config.New()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	log.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	var err error
	switch cfg.GetString(config.ConfigMode) {
	case meta.ModeExperiment:
		_, err = experiments.RunDepthExperiment(experiments.Settings{
			Games:     cfg.GetInt(config.ConfigGames),
			MoveLimit: cfg.GetInt(config.ConfigMoveLimit),
			Seed:      cfg.GetUint64(config.ConfigSeed),
			OutputDir: cfg.GetString(config.ConfigOutputDir),
		})
	default:
		err = play(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// play runs one game on the terminal.
func play(cfg *config.Config) error {
	seed := cfg.GetUint64(config.ConfigSeed)
	attackers := newPlayer(cfg.GetString(config.ConfigAttackers), cfg.GetInt(config.ConfigDepth), seed)
	defenders := newPlayer(cfg.GetString(config.ConfigDefenders), cfg.GetInt(config.ConfigDepth), seed+1)

	e := engine.NewLocalEngine(attackers, defenders,
		engine.WithMoveLimit(cfg.GetInt(config.ConfigMoveLimit)),
		engine.WithView(engine.TextView(os.Stdout)),
	)
	_, _, err := e.Run()
	return err
}

func newPlayer(kind string, depth int, seed uint64) player.Player {
	if kind == meta.PlayerManual {
		return player.NewManual(os.Stdin, os.Stdout)
	}
	return experiments.NewPlayer(metrics.AgentConfig{Kind: kind, Depth: depth}, seed)
}
