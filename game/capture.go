package game

// kingZone holds the squares on which the king can only be taken by
// surrounding it on all four sides.
var kingZone = map[Square]bool{
	Throne:             true,
	throneNeighbors[0]: true,
	throneNeighbors[1]: true,
	throneNeighbors[2]: true,
	throneNeighbors[3]: true,
}

// throneBesieged reports whether at least three throne neighbours hold
// attackers.
func (b *Board) throneBesieged() bool {
	n := 0
	for _, sq := range throneNeighbors {
		if b.cells[sq] == Attacker {
			n++
		}
	}
	return n >= 3
}

// hostile reports whether sq helps capture a piece p standing next to it.
func (b *Board) hostile(sq Square, p Piece) bool {
	if sq == Throne {
		if b.cells[sq] == Empty {
			return true
		}
		if p.Side() == Defenders && b.throneBesieged() {
			return true
		}
	}
	return b.cells[sq].Side() == p.Side().Opponent()
}

// captures returns the opposing pieces taken by the piece that just moved to
// to. Nothing is removed here so that all captures are judged on the same
// position.
func (b *Board) captures(to Square) []Square {
	mover := b.cells[to].Side()
	var taken []Square
	for _, d := range Directions {
		sq := to.Neighbor(d)
		if sq == NoSquare {
			continue
		}
		victim := b.cells[sq]
		if victim.Side() != mover.Opponent() {
			continue
		}
		if victim == King && kingZone[sq] {
			if b.surrounded(sq) {
				taken = append(taken, sq)
			}
			continue
		}
		if beyond := to.Step(d, 2); beyond != NoSquare && b.hostile(beyond, victim) {
			taken = append(taken, sq)
		}
	}
	return taken
}

// surrounded reports whether all four neighbours of the king at sq are
// hostile to it.
func (b *Board) surrounded(sq Square) bool {
	for _, d := range Directions {
		n := sq.Neighbor(d)
		if n == NoSquare || !b.hostile(n, King) {
			return false
		}
	}
	return true
}
