package engine

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tablut/game"
	"tablut/player"
	"tablut/searcher"
)

func TestLocalEngineRun(t *testing.T) {
	t.Run("plays to a result within the move limit", func(t *testing.T) {
		views := 0
		e := NewLocalEngine(
			player.NewAI(searcher.NewAlphaBeta(searcher.WithMetrics())),
			player.NewRandom(11),
			WithMoveLimit(10),
			WithView(ViewFunc(func(*game.Board) { views++ })),
		)

		gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.NotEqual(t, game.NoSide, e.Board.Winner())
		require.LessOrEqual(t, gameMetric.TotalMoves, 20)
		require.Equal(t, e.Board.Winner().String(), gameMetric.Winner)
		require.Equal(t, e.ID, gameMetric.GameID)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Len(t, e.Updates, gameMetric.TotalMoves)
		require.Equal(t, gameMetric.TotalMoves+1, views, "one view update per move plus the start")

		require.Equal(t, "attackers", moveMetrics[0].Side)
		require.Equal(t, 1, moveMetrics[0].Step)
		require.Positive(t, moveMetrics[0].Nodes, "AI moves carry search metrics")
		if len(moveMetrics) > 1 {
			require.Zero(t, moveMetrics[1].Nodes, "random moves do not")
		}
		require.Equal(t, e.Board.Hash(), e.Updates[len(e.Updates)-1].Hash)
	})

	t.Run("replays identically with the same seeds", func(t *testing.T) {
		run := func() []Update {
			e := NewLocalEngine(player.NewRandom(5), player.NewRandom(6), WithMoveLimit(15))
			_, _, err := e.Run()
			require.NoError(t, err)
			return e.Updates
		}
		require.Equal(t, run(), run())
	})

	t.Run("ends on a repeated position", func(t *testing.T) {
		var out bytes.Buffer
		e := NewLocalEngine(
			player.NewManual(strings.NewReader("a4-b4\nb4-a4\n"), nil),
			player.NewManual(strings.NewReader("e7-f7\nf7-e7\n"), nil),
			WithView(TextView(&out)),
		)

		gameMetric, _, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, "attackers", gameMetric.Winner)
		require.True(t, gameMetric.Repeated)
		require.Equal(t, 4, gameMetric.TotalMoves)
		require.Contains(t, out.String(), "attackers to move")
		require.True(t, strings.HasSuffix(out.String(), "attackers win by repetition\n"))
	})

	t.Run("asks a manual player again after a bad move", func(t *testing.T) {
		e := NewLocalEngine(
			player.NewManual(strings.NewReader("e5-e7\nnonsense\na4-b4\n"), nil),
			player.NewRandom(1),
		)

		_, moveMetrics, err := e.Run()
		require.ErrorIs(t, err, io.EOF, "the script runs out on the attackers' second turn")
		require.Len(t, moveMetrics, 2)
		require.Equal(t, "a4-b4", e.Updates[0].Move.String())
		require.Equal(t, 2, e.Board.MoveCount())
	})

	t.Run("stops when an automatic player fails", func(t *testing.T) {
		e := NewLocalEngine(failingPlayer{}, player.NewRandom(1))

		_, _, err := e.Run()
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Zero(t, e.Board.MoveCount())
	})

	t.Run("starts from a given board", func(t *testing.T) {
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
		require.NoError(t, err)
		e := NewLocalEngine(player.NewRandom(1), player.NewAI(searcher.NewAlphaBeta()), WithBoard(b))

		gameMetric, _, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, "defenders", gameMetric.Winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})
}

// failingPlayer always proposes a move the attackers cannot make.
type failingPlayer struct{}

func (failingPlayer) Move(*game.Board) (game.Move, error) {
	return game.Mv(game.Sq(4, 6), game.Sq(5, 6)), nil
}

func (failingPlayer) IsManual() bool { return false }

func TestTextView(t *testing.T) {
	var out bytes.Buffer
	TextView(&out).Update(game.New())
	require.True(t, strings.HasPrefix(out.String(), " 9 - - - B B B - - -\n"))
	require.True(t, strings.HasSuffix(out.String(), "   a b c d e f g h i\nattackers to move\n"))
}
