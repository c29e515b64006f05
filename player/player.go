package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/rand"

	"tablut/game"
	"tablut/searcher"
)

var ErrNoMoves = errors.New("no legal moves")

// Player produces the next move for the side to move on a board.
type Player interface {
	Move(b *game.Board) (game.Move, error)
	// IsManual reports whether moves come from a person, who may be asked
	// again after entering a bad move.
	IsManual() bool
}

// MetricReporter is implemented by players that search for their moves.
type MetricReporter interface {
	LastMetric() searcher.SearchMetric
}

// AI plays the moves chosen by an alpha-beta searcher.
type AI struct {
	searcher   *searcher.AlphaBeta
	lastMetric searcher.SearchMetric
}

func NewAI(s *searcher.AlphaBeta) *AI {
	return &AI{searcher: s}
}

func (p *AI) Move(b *game.Board) (game.Move, error) {
	if b.Winner() != game.NoSide || !b.HasMove(b.Turn()) {
		return game.NoMove, ErrNoMoves
	}
	move, metric := p.searcher.FindMove(b)
	p.lastMetric = metric
	return move, nil
}

func (p *AI) IsManual() bool { return false }

func (p *AI) LastMetric() searcher.SearchMetric { return p.lastMetric }

// Manual reads moves typed as "e5-e7", one per line.
type Manual struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewManual returns a player reading from in. A prompt naming the side to
// move is written to out before each read; out may be nil.
func NewManual(in io.Reader, out io.Writer) *Manual {
	if out == nil {
		out = io.Discard
	}
	return &Manual{in: bufio.NewScanner(in), out: out}
}

func (p *Manual) Move(b *game.Board) (game.Move, error) {
	for {
		fmt.Fprintf(p.out, "%s> ", b.Turn())
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.NoMove, fmt.Errorf("reading move: %w", err)
			}
			return game.NoMove, io.EOF
		}
		line := strings.TrimSpace(p.in.Text())
		if line == "" {
			continue
		}
		return game.ParseMove(line)
	}
}

func (p *Manual) IsManual() bool { return true }

// Random plays a uniformly chosen legal move. Two players built from the same
// seed make the same choices.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Move(b *game.Board) (game.Move, error) {
	if b.Winner() != game.NoSide {
		return game.NoMove, ErrNoMoves
	}
	moves := b.LegalMoves(b.Turn())
	if len(moves) == 0 {
		return game.NoMove, ErrNoMoves
	}
	return moves[p.rng.Intn(len(moves))], nil
}

func (p *Random) IsManual() bool { return false }
