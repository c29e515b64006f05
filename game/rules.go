package game

import "fmt"

// IsUnblockedMove reports whether from-to is an orthogonal slide whose path,
// destination included, is empty.
func (b *Board) IsUnblockedMove(from, to Square) bool {
	d := from.Direction(to)
	if d == NoDirection {
		return false
	}
	for _, sq := range rays[from][d] {
		if b.cells[sq] != Empty {
			return false
		}
		if sq == to {
			return true
		}
	}
	return false
}

// IsLegal reports whether the side to move may play from-to.
func (b *Board) IsLegal(from, to Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	p := b.cells[from]
	if p == Empty || p.Side() != b.turn {
		return false
	}
	if to == Throne && p != King {
		return false
	}
	return b.IsUnblockedMove(from, to)
}

// IsLegalMove is IsLegal(m.From, m.To).
func (b *Board) IsLegalMove(m Move) bool {
	return b.IsLegal(m.From, m.To)
}

// LegalMoves returns every legal move for side, regardless of whose turn it
// is. Moves are grouped by origin square in index order, then by direction.
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	for _, from := range b.Pieces(side) {
		moves = b.appendMoves(moves, from)
	}
	return moves
}

// KingMoves returns the legal moves of the king alone.
func (b *Board) KingMoves() []Move {
	k := b.KingPosition()
	if k == NoSquare {
		return nil
	}
	return b.appendMoves(nil, k)
}

// HasMove reports whether side has at least one legal move.
func (b *Board) HasMove(side Side) bool {
	for _, from := range AllSquares {
		if b.cells[from].Side() != side {
			continue
		}
		if b.countFrom(from) > 0 {
			return true
		}
	}
	return false
}

func (b *Board) countMoves(side Side) int {
	n := 0
	for _, from := range AllSquares {
		if b.cells[from].Side() == side {
			n += b.countFrom(from)
		}
	}
	return n
}

func (b *Board) appendMoves(moves []Move, from Square) []Move {
	p := b.cells[from]
	for _, d := range Directions {
		for _, to := range rays[from][d] {
			if b.cells[to] != Empty {
				break
			}
			// The empty throne may be crossed but not occupied.
			if to == Throne && p != King {
				continue
			}
			moves = append(moves, Mv(from, to))
		}
	}
	return moves
}

func (b *Board) countFrom(from Square) int {
	p := b.cells[from]
	n := 0
	for _, d := range Directions {
		for _, to := range rays[from][d] {
			if b.cells[to] != Empty {
				break
			}
			if to == Throne && p != King {
				continue
			}
			n++
		}
	}
	return n
}

// MakeMove plays from-to for the side to move. It returns ErrIllegalMove
// without changing the board if the move is not legal, and ErrGameOver once
// a winner is known.
func (b *Board) MakeMove(from, to Square) error {
	if b.winner != NoSide {
		return ErrGameOver
	}
	if !b.IsLegal(from, to) {
		return fmt.Errorf("%w: %s-%s for %s", ErrIllegalMove, from, to, b.turn)
	}

	mark := len(b.journal)
	b.journal = append(b.journal, change{boundary: true, turn: b.turn})

	p := b.cells[from]
	b.set(from, Empty)
	b.set(to, p)
	for _, sq := range b.captures(to) {
		b.set(sq, Empty)
	}
	b.moveCount++

	mover := b.turn
	switch king := b.KingPosition(); {
	case king == NoSquare:
		b.winner = Attackers
	case king.IsEdge():
		b.winner = Defenders
	case b.moveLimit > 0 && b.moveCount >= 2*b.moveLimit:
		b.winner = mover.Opponent()
	}
	if b.winner != NoSide {
		return nil
	}

	b.turn = mover.Opponent()
	if b.checkRepeated(mark) {
		return nil
	}
	if !b.HasMove(b.turn) {
		b.winner = mover
	}
	return nil
}

// Play is MakeMove(m.From, m.To).
func (b *Board) Play(m Move) error {
	return b.MakeMove(m.From, m.To)
}
