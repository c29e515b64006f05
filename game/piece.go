package game

// Piece is the content of a single board cell.
type Piece uint8

const (
	Empty Piece = iota
	Attacker
	Defender
	King
)

// Side is one of the two players. NoSide doubles as the "no winner yet" value.
type Side uint8

const (
	NoSide Side = iota
	Attackers
	Defenders
)

// Side returns the side owning p, or NoSide for an empty cell.
func (p Piece) Side() Side {
	switch p {
	case Attacker:
		return Attackers
	case Defender, King:
		return Defenders
	default:
		return NoSide
	}
}

func (p Piece) String() string {
	switch p {
	case Attacker:
		return "B"
	case Defender:
		return "W"
	case King:
		return "K"
	default:
		return "-"
	}
}

func pieceFromGlyph(c byte) (Piece, bool) {
	switch c {
	case '-':
		return Empty, true
	case 'B':
		return Attacker, true
	case 'W':
		return Defender, true
	case 'K':
		return King, true
	}
	return Empty, false
}

// Opponent returns the other side. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Attackers:
		return Defenders
	case Defenders:
		return Attackers
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case Attackers:
		return "attackers"
	case Defenders:
		return "defenders"
	default:
		return "none"
	}
}

// glyph is the single-character form used in encoded states.
func (s Side) glyph() byte {
	switch s {
	case Attackers:
		return 'B'
	case Defenders:
		return 'W'
	default:
		panic("no glyph for side " + s.String())
	}
}
