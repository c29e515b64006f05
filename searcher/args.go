package searcher

import "tablut/game"

// Search depth tiers, by the number of moves already played. Early positions
// are searched shallowly; the depth grows as the game opens up.
const (
	EarlyDepth = 1
	MidDepth   = 3
	LateDepth  = 5
)

// Move counts at which the tiers change: (2N+2)*2 and that plus 3N.
const (
	earlyGameMoves = (2*game.Size + 2) * 2
	lateGameMoves  = earlyGameMoves + 3*game.Size
)

func depthForMoveCount(moves int) int {
	switch {
	case moves <= earlyGameMoves:
		return EarlyDepth
	case moves >= lateGameMoves:
		return LateDepth
	default:
		return MidDepth
	}
}
