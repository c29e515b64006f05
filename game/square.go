package game

import (
	"fmt"
	"strings"
)

// Size is the number of squares on a side of the board.
const Size = 9

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// Square identifies a board position by its index row*Size + col, with row 0
// at the bottom of the board and col 0 on the left.
type Square int8

// NoSquare is returned by geometry operations that would leave the board.
const NoSquare Square = -1

// Direction is one of the four orthogonal directions.
type Direction int8

const (
	North Direction = iota
	East
	South
	West
	NoDirection Direction = -1
)

// Directions lists the four orthogonal directions in a fixed order.
var Directions = [4]Direction{North, East, South, West}

var deltas = [4][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// AllSquares holds every square in index order.
var AllSquares []Square

// rays[sq][dir] lists the squares reached by sliding from sq in dir, nearest
// first, up to the board edge.
var rays [NumSquares][4][]Square

func init() {
	AllSquares = make([]Square, NumSquares)
	for i := range AllSquares {
		AllSquares[i] = Square(i)
	}
	for _, sq := range AllSquares {
		for _, d := range Directions {
			for dist := 1; ; dist++ {
				to := sq.Step(d, dist)
				if to == NoSquare {
					break
				}
				rays[sq][d] = append(rays[sq][d], to)
			}
		}
	}
}

// Sq returns the square at (col, row), or NoSquare if it is off the board.
func Sq(col, row int) Square {
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return NoSquare
	}
	return Square(row*Size + col)
}

func (s Square) Col() int { return int(s) % Size }
func (s Square) Row() int { return int(s) / Size }

// Valid reports whether s names a square on the board.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// IsEdge reports whether s lies on the outer ring of the board.
func (s Square) IsEdge() bool {
	c, r := s.Col(), s.Row()
	return c == 0 || r == 0 || c == Size-1 || r == Size-1
}

// IsOrthogonal reports whether s and to are distinct and share a row or column.
func (s Square) IsOrthogonal(to Square) bool {
	if s == to || !s.Valid() || !to.Valid() {
		return false
	}
	return s.Col() == to.Col() || s.Row() == to.Row()
}

// Direction returns the direction from s to to, or NoDirection when the two
// squares are not orthogonal to each other.
func (s Square) Direction(to Square) Direction {
	if !s.IsOrthogonal(to) {
		return NoDirection
	}
	switch {
	case to.Row() > s.Row():
		return North
	case to.Row() < s.Row():
		return South
	case to.Col() > s.Col():
		return East
	default:
		return West
	}
}

// Step returns the square dist cells away from s in direction d, or NoSquare
// if that leaves the board.
func (s Square) Step(d Direction, dist int) Square {
	if !s.Valid() || d < North || d > West {
		return NoSquare
	}
	delta := deltas[d]
	return Sq(s.Col()+delta[0]*dist, s.Row()+delta[1]*dist)
}

// Neighbor is Step(d, 1).
func (s Square) Neighbor(d Direction) Square {
	return s.Step(d, 1)
}

func (s Square) String() string {
	if !s.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), s.Row()+1)
}

// ParseSquare reads a square in column-letter, row-number notation ("e5").
func ParseSquare(text string) (Square, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, text)
	}
	sq := Sq(int(text[0]-'a'), int(text[1]-'1'))
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, text)
	}
	return sq, nil
}
