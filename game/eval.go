package game

import "math"

const (
	// WinningValue is the score magnitude of a decided game (positive when the
	// defenders won, negative when the attackers won).
	WinningValue = math.MaxInt32 - 20
	// WillWinValue marks a forced win on a later move. It sits below
	// WinningValue so that immediate wins are preferred; no evaluator produces
	// it yet.
	WillWinValue = math.MaxInt32 - 40
)

// EvaluateMobility scores a position by legal-move counts alone: defender-side
// moves plus king moves minus attacker moves. Decided games score
// ±WinningValue.
func EvaluateMobility(b *Board) int {
	switch b.Winner() {
	case Defenders:
		return WinningValue
	case Attackers:
		return -WinningValue
	}
	defenders := b.countMoves(Defenders)
	attackers := b.countMoves(Attackers)
	return defenders + len(b.KingMoves()) - attackers
}
