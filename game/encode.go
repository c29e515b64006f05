package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Encode returns the canonical key of the position: the glyph of the side to
// move followed by the glyph of every square in index order.
func (b *Board) Encode() string {
	var buf [NumSquares + 1]byte
	buf[0] = b.turn.glyph()
	for _, sq := range AllSquares {
		buf[sq+1] = b.cells[sq].String()[0]
	}
	return string(buf[:])
}

// Hash returns a 64-bit digest of Encode.
func (b *Board) Hash() uint64 {
	return xxhash.Sum64String(b.Encode())
}

func (b *Board) String() string {
	return b.Render(true)
}

// Render draws the board top row first, one glyph per square. With
// coordinates, row numbers run down the left side and column letters along
// the bottom.
func (b *Board) Render(coordinates bool) string {
	var out strings.Builder
	for r := Size - 1; r >= 0; r-- {
		if coordinates {
			fmt.Fprintf(&out, "%2d", r+1)
		} else {
			out.WriteString("  ")
		}
		for c := 0; c < Size; c++ {
			fmt.Fprintf(&out, " %s", b.cells[Sq(c, r)])
		}
		out.WriteByte('\n')
	}
	if coordinates {
		out.WriteString("  ")
		for c := 0; c < Size; c++ {
			fmt.Fprintf(&out, " %c", 'a'+c)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// FromLayout builds a board from Size lines of glyphs, top row first, as
// produced by Render. Spaces and row or column labels are ignored. The
// layout must hold exactly one king.
func FromLayout(layout string, turn Side) (*Board, error) {
	if turn != Attackers && turn != Defenders {
		return nil, fmt.Errorf("%w: no side to move", ErrBadLayout)
	}
	var rows [][]Piece
	for _, line := range strings.Split(layout, "\n") {
		var row []Piece
		for i := 0; i < len(line); i++ {
			if p, ok := pieceFromGlyph(line[i]); ok {
				row = append(row, p)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %q has %d squares", ErrBadLayout, line, len(row))
		}
		rows = append(rows, row)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: %d rows", ErrBadLayout, len(rows))
	}

	b := &Board{turn: turn}
	kings := 0
	for i, row := range rows {
		for c, p := range row {
			b.cells[Sq(c, Size-1-i)] = p
			if p == King {
				kings++
			}
		}
	}
	if kings != 1 {
		return nil, fmt.Errorf("%w: %d kings", ErrBadLayout, kings)
	}
	b.ClearUndo()
	return b, nil
}
