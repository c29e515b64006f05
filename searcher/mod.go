package searcher

import (
	"math"

	"tablut/game"
)

// Infinity bounds the initial alpha-beta window. It exceeds every evaluation,
// game.WinningValue included.
const Infinity = math.MaxInt32

// Sense selects whether a search level maximizes (defenders) or minimizes
// (attackers) the evaluation.
type Sense int

const (
	Minimize Sense = -1
	Maximize Sense = 1
)

func senseFor(side game.Side) Sense {
	switch side {
	case game.Defenders:
		return Maximize
	case game.Attackers:
		return Minimize
	default:
		panic("no search sense for side " + side.String())
	}
}

// Searcher picks a move for the side to move on a board.
type Searcher interface {
	ChooseMove(b *game.Board) game.Move
}
