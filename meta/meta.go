// meta/meta.go
package meta

// Player kinds accepted for either side.
const (
	PlayerAI     = "ai"
	PlayerManual = "manual"
	PlayerRandom = "random"
)

// Run modes.
const (
	ModePlay       = "play"
	ModeExperiment = "experiment"
)

// MOVE_LIMIT is the default number of move pairs before the side to move wins.
const MOVE_LIMIT = 100

// GAMES is the number of games played per experiment match-up.
const GAMES = 10

// OUTPUT_DIR holds experiment results.
const OUTPUT_DIR = "results"

// SEED seeds the random players.
const SEED = 1
