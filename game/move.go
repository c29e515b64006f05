package game

import (
	"fmt"
	"strings"
)

// Move represents a single slide of a piece. A Move is not validated when it
// is built; legality depends on the board it is played on.
type Move struct {
	From Square
	To   Square
}

// NoMove is the zero-information move returned when none is available.
var NoMove = Move{From: NoSquare, To: NoSquare}

// Mv returns the move from-to.
func Mv(from, to Square) Move {
	return Move{From: from, To: to}
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// ParseMove reads a move written as "e5-e7" or "e5 e7".
func ParseMove(text string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return NoMove, fmt.Errorf("%w: %q", ErrBadMove, text)
	}
	from, err := ParseSquare(fields[0])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %w", ErrBadMove, err)
	}
	to, err := ParseSquare(fields[1])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %w", ErrBadMove, err)
	}
	return Mv(from, to), nil
}
