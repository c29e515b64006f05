package metrics

import (
	"time"

	"tablut/searcher"
)

// MoveMetric describes one applied move of a game.
type MoveMetric struct {
	Step int    // move number, starting at 1
	Side string // side that moved
	Move string
	searcher.SearchMetric
}

// GameMetric summarizes a finished (or aborted) game.
type GameMetric struct {
	GameID     string
	Winner     string
	Repeated   bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig describes a player taking part in an experiment. Depth 0 uses
// the searcher's move-count tiers; Kind "random" ignores Depth.
type AgentConfig struct {
	ID    int
	Kind  string
	Depth int
}

type GameRecord struct {
	ID        int
	Attackers int // AgentConfig.ID
	Defenders int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
