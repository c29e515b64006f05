package player

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"tablut/game"
	"tablut/searcher"
)

func TestAI(t *testing.T) {
	is := is.New(t)
	b := game.New()
	p := NewAI(searcher.NewAlphaBeta(searcher.WithMetrics()))

	move, err := p.Move(b)
	is.NoErr(err)
	is.True(b.IsLegalMove(move))
	is.True(!p.IsManual())
	is.Equal(p.LastMetric().Depth, searcher.EarlyDepth)
	is.True(p.LastMetric().Nodes > 0)
	is.Equal(b.Encode(), game.New().Encode()) // board untouched
}

func TestManual(t *testing.T) {
	t.Run("reads moves and skips blank lines", func(t *testing.T) {
		is := is.New(t)
		var prompt bytes.Buffer
		p := NewManual(strings.NewReader("\n  a4-b4\n"), &prompt)

		move, err := p.Move(game.New())
		is.NoErr(err)
		is.Equal(move, game.Mv(game.Sq(0, 3), game.Sq(1, 3)))
		is.True(p.IsManual())
		is.True(strings.HasPrefix(prompt.String(), "attackers> "))
	})

	t.Run("reports bad notation", func(t *testing.T) {
		is := is.New(t)
		p := NewManual(strings.NewReader("e5 to e7\na4-b4\n"), nil)

		_, err := p.Move(game.New())
		is.True(errors.Is(err, game.ErrBadMove))

		move, err := p.Move(game.New())
		is.NoErr(err)
		is.Equal(move.String(), "a4-b4")
	})

	t.Run("returns EOF at end of input", func(t *testing.T) {
		is := is.New(t)
		p := NewManual(strings.NewReader(""), nil)

		_, err := p.Move(game.New())
		is.Equal(err, io.EOF)
	})
}

func TestRandom(t *testing.T) {
	t.Run("plays legal moves reproducibly", func(t *testing.T) {
		is := is.New(t)
		p1, p2 := NewRandom(3), NewRandom(3)
		b1, b2 := game.New(), game.New()

		for i := 0; i < 20 && b1.Winner() == game.NoSide; i++ {
			m1, err := p1.Move(b1)
			is.NoErr(err)
			m2, err := p2.Move(b2)
			is.NoErr(err)
			is.Equal(m1, m2)
			is.NoErr(b1.Play(m1))
			is.NoErr(b2.Play(m2))
		}
		is.Equal(b1.Encode(), b2.Encode())
	})

	t.Run("refuses a finished game", func(t *testing.T) {
		is := is.New(t)
		b, err := game.FromLayout(`
			- - - - - - - - -
			- - - - - - - - -
			- - K - - - - - -
			- - - - - - - - -
			- - - - - - - B -
			- - - - - - - - -
			- - - - - - - - -
			- - - - - - - - -
			- - - - - - - - -`, game.Defenders)
		is.NoErr(err)
		is.NoErr(b.Play(game.Mv(game.Sq(2, 6), game.Sq(2, 8))))

		_, err = NewRandom(1).Move(b)
		is.True(errors.Is(err, ErrNoMoves))
		_, err = NewAI(searcher.NewAlphaBeta()).Move(b)
		is.True(errors.Is(err, ErrNoMoves))
	})
}
