package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"tablut/engine"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/meta"
	"tablut/player"
	"tablut/searcher"
)

// Settings shared by every game of an experiment.
type Settings struct {
	Games     int // per match-up
	MoveLimit int // move pairs
	Seed      uint64
	OutputDir string
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: meta.PlayerAI, Depth: searcher.EarlyDepth},
	{ID: 2, Kind: meta.PlayerAI, Depth: searcher.MidDepth},
	{ID: 3, Kind: meta.PlayerAI}, // move-count tiers
}

// RunDepthExperiment plays every pair of search depths against each other
// and against a random baseline. It returns the directory holding the results.
func RunDepthExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: meta.PlayerRandom}
	configs := append([]metrics.AgentConfig{baseline}, depthConfigs...)
	return runExperiment("depth", configs, roundRobin(configs), settings)
}

// roundRobin pairs each config with every later one.
func roundRobin(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	var matchUps [][2]metrics.AgentConfig
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < settings.Games; i++ {
			// Sides alternate between games of a matchup
			attackers, defenders := matchUp[0], matchUp[1]
			if i%2 == 1 {
				attackers, defenders = defenders, attackers
			}
			count++

			gameMetric, moveMetrics, err := runGame(attackers, defenders, settings.MoveLimit, settings.Seed+uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Attackers:  attackers.ID,
				Defenders:  defenders.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
	}

	wins := Wins(gameRecords)
	for _, config := range configs {
		log.Info().Msgf("agent %d (%s, depth %d) won %d games", config.ID, config.Kind, config.Depth, wins[config.ID])
	}
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("creating experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return writer.Dir(), nil
}

// Wins counts the games won by each agent ID.
func Wins(records []metrics.GameRecord) map[int]int {
	decided := lo.Filter(records, func(r metrics.GameRecord, _ int) bool {
		return r.Winner != game.NoSide.String()
	})
	return lo.CountValuesBy(decided, func(r metrics.GameRecord) int {
		if r.Winner == game.Attackers.String() {
			return r.Attackers
		}
		return r.Defenders
	})
}

// runGame executes a single game between two agents.
func runGame(attackers, defenders metrics.AgentConfig, moveLimit int, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(
		NewPlayer(attackers, seed),
		NewPlayer(defenders, seed+1),
		engine.WithMoveLimit(moveLimit),
	)
	return e.Run()
}

// NewPlayer builds an automatic player from its config.
func NewPlayer(config metrics.AgentConfig, seed uint64) player.Player {
	switch config.Kind {
	case meta.PlayerAI:
		return player.NewAI(searcher.NewAlphaBeta(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
	case meta.PlayerRandom:
		return player.NewRandom(seed)
	default:
		panic(fmt.Sprintf("no automatic player of kind %q", config.Kind))
	}
}
