package game

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Throne is the centre square. Only the king may stop on it.
var Throne = Sq(4, 4)

// throneNeighbors are the four squares orthogonally adjacent to the throne.
var throneNeighbors = [4]Square{Sq(4, 5), Sq(5, 4), Sq(4, 3), Sq(3, 4)}

var initialAttackers = []Square{
	Sq(0, 3), Sq(0, 4), Sq(0, 5), Sq(1, 4),
	Sq(8, 3), Sq(8, 4), Sq(8, 5), Sq(7, 4),
	Sq(3, 0), Sq(4, 0), Sq(5, 0), Sq(4, 1),
	Sq(3, 8), Sq(4, 8), Sq(5, 8), Sq(4, 7),
}

var initialDefenders = []Square{
	Sq(4, 5), Sq(5, 4), Sq(4, 3), Sq(3, 4),
	Sq(4, 6), Sq(4, 2), Sq(2, 4), Sq(6, 4),
}

// Board is the state of a Tablut game. It is mutated only through MakeMove,
// Play and Undo; search code explores positions on a Copy.
type Board struct {
	cells     [NumSquares]Piece
	turn      Side
	moveCount int
	moveLimit int // in move pairs, 0 means unlimited
	winner    Side
	repeated  bool
	seen      map[string]struct{} // encoded positions reached so far
	journal   []change
}

// New returns a board in the initial position with the attackers to move.
func New() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets b to the initial position. The move limit is kept.
func (b *Board) Init() {
	for _, sq := range AllSquares {
		b.cells[sq] = initialContent(sq)
	}
	b.turn = Attackers
	b.moveCount = 0
	b.winner = NoSide
	b.repeated = false
	b.ClearUndo()
}

func initialContent(sq Square) Piece {
	switch {
	case slices.Contains(initialAttackers, sq):
		return Attacker
	case slices.Contains(initialDefenders, sq):
		return Defender
	case sq == Throne:
		return King
	case sq.Valid():
		return Empty
	default:
		panic("initial layout has no role for square " + sq.String())
	}
}

// Copy returns an independent deep copy of b, history and undo journal
// included.
func (b *Board) Copy() *Board {
	c := *b
	c.seen = maps.Clone(b.seen)
	c.journal = slices.Clone(b.journal)
	return &c
}

// Turn returns the side to move.
func (b *Board) Turn() Side { return b.turn }

// Winner returns the side that has won, or NoSide while the game goes on.
func (b *Board) Winner() Side { return b.winner }

// MoveCount returns the number of moves applied and not undone.
func (b *Board) MoveCount() int { return b.moveCount }

// MoveLimit returns the configured limit in move pairs (0 when unlimited).
func (b *Board) MoveLimit() int { return b.moveLimit }

// RepeatedPosition reports whether the current winner was decided by a
// repeated position.
func (b *Board) RepeatedPosition() bool { return b.repeated }

// Get returns the content of sq.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// KingPosition returns the king's square, or NoSquare once it is captured.
func (b *Board) KingPosition() Square {
	for _, sq := range AllSquares {
		if b.cells[sq] == King {
			return sq
		}
	}
	return NoSquare
}

// Pieces returns the squares occupied by side, in index order.
func (b *Board) Pieces(side Side) []Square {
	return lo.Filter(AllSquares, func(sq Square, _ int) bool {
		return b.cells[sq].Side() == side
	})
}

// SetMoveLimit limits the game to n move pairs; once 2n moves have been made
// the side that made the last move loses. n <= 0 removes the limit.
func (b *Board) SetMoveLimit(n int) error {
	if n > 0 && 2*n <= b.moveCount {
		return ErrMoveLimit
	}
	b.moveLimit = max(n, 0)
	return nil
}
