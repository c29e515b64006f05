package game

// change is one entry of the undo journal. A boundary entry opens each move
// and records what the move did to the turn and the position history; the
// entries after it record the prior content of every square the move touched.
type change struct {
	boundary bool
	turn     Side   // side to move before the move (boundary only)
	recorded string // encoding added to the history by the move (boundary only)
	sq       Square
	prev     Piece
}

// set puts p on sq and journals the previous content.
func (b *Board) set(sq Square, p Piece) {
	b.journal = append(b.journal, change{sq: sq, prev: b.cells[sq]})
	b.cells[sq] = p
}

// checkRepeated records the current position in the history. If it has been
// seen before, the game ends and the side that recreated it loses.
func (b *Board) checkRepeated(mark int) bool {
	enc := b.Encode()
	if _, ok := b.seen[enc]; ok {
		b.repeated = true
		b.winner = b.turn
		return true
	}
	b.seen[enc] = struct{}{}
	b.journal[mark].recorded = enc
	return false
}

// Undo takes back the last move. It has no effect on the initial position or
// when the journal was cleared since the last move.
func (b *Board) Undo() {
	if b.moveCount == 0 {
		return
	}
	mark := -1
	for i := len(b.journal) - 1; i >= 0; i-- {
		if b.journal[i].boundary {
			mark = i
			break
		}
	}
	if mark < 0 {
		return
	}
	for i := len(b.journal) - 1; i > mark; i-- {
		c := b.journal[i]
		b.cells[c.sq] = c.prev
	}
	boundary := b.journal[mark]
	if boundary.recorded != "" {
		delete(b.seen, boundary.recorded)
	}
	b.journal = b.journal[:mark]
	b.turn = boundary.turn
	b.winner = NoSide
	b.repeated = false
	b.moveCount--
}

// ClearUndo discards the undo journal and the position history, keeping only
// the current position as seen. The position and win status are unchanged.
func (b *Board) ClearUndo() {
	b.journal = b.journal[:0]
	b.seen = map[string]struct{}{b.Encode(): {}}
}
