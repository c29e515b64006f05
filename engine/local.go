package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/player"
)

// Update records one applied move.
type Update struct {
	Move game.Move
	Side game.Side
	Hash uint64 // game.Board.Hash after the move
}

type Option func(e *LocalEngine)

// WithMoveLimit ends the game after limit move pairs.
func WithMoveLimit(limit int) Option {
	return func(e *LocalEngine) {
		e.moveLimit = limit
	}
}

func WithView(view View) Option {
	return func(e *LocalEngine) {
		if view != nil {
			e.views = append(e.views, view)
		}
	}
}

// WithBoard starts from b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *LocalEngine) {
		if b != nil {
			e.Board = b
		}
	}
}

// LocalEngine owns the authoritative board and asks each side's player for a
// move in turn.
type LocalEngine struct {
	ID      string
	Board   *game.Board
	Updates []Update

	players   map[game.Side]player.Player
	views     []View
	moveLimit int
}

func NewLocalEngine(attackers, defenders player.Player, options ...Option) *LocalEngine {
	if attackers == nil || defenders == nil {
		panic("both sides need a player")
	}
	e := &LocalEngine{
		ID: uuid.NewString(),
		players: map[game.Side]player.Player{
			game.Attackers: attackers,
			game.Defenders: defenders,
		},
	}
	for _, option := range options {
		option(e)
	}
	if e.Board == nil {
		e.Board = game.New()
	}
	return e
}

// Run executes the game loop until a winner is found. Bad input from a manual
// player is logged and the player is asked again; any other player error
// stops the game.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{GameID: e.ID, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	if e.moveLimit > 0 {
		if err := e.Board.SetMoveLimit(e.moveLimit); err != nil {
			return gameMetric, nil, fmt.Errorf("setting move limit %d: %w", e.moveLimit, err)
		}
	}

	log.Info().Str("game", e.ID).Msgf("%s to move", e.Board.Turn())
	e.notify()

	var err error
	for e.Board.Winner() == game.NoSide {
		var moveMetric metrics.MoveMetric
		moveMetric, err = e.step()
		if errors.Is(err, errRetry) {
			continue
		}
		if err != nil {
			break
		}
		moveMetrics = append(moveMetrics, moveMetric)
		e.notify()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Board.MoveCount()
	gameMetric.Winner = e.Board.Winner().String()
	gameMetric.Repeated = e.Board.RepeatedPosition()

	if err != nil {
		log.Warn().Str("game", e.ID).Err(err).Msgf("game stopped after %d moves", gameMetric.TotalMoves)
		return gameMetric, moveMetrics, err
	}
	log.Info().Str("game", e.ID).
		Bool("repeated", gameMetric.Repeated).
		Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)
	return gameMetric, moveMetrics, nil
}

var errRetry = errors.New("retry move")

func (e *LocalEngine) step() (metrics.MoveMetric, error) {
	side := e.Board.Turn()
	p := e.players[side]

	move, err := p.Move(e.Board)
	if err == nil {
		err = e.Board.Play(move)
	}
	if err != nil {
		if p.IsManual() && (errors.Is(err, game.ErrBadMove) || errors.Is(err, game.ErrIllegalMove)) {
			log.Warn().Str("game", e.ID).Err(err).Msgf("rejected move for %s", side)
			return metrics.MoveMetric{}, errRetry
		}
		return metrics.MoveMetric{}, fmt.Errorf("%s player: %w", side, err)
	}

	e.Updates = append(e.Updates, Update{Move: move, Side: side, Hash: e.Board.Hash()})
	moveMetric := metrics.MoveMetric{
		Step: e.Board.MoveCount(),
		Side: side.String(),
		Move: move.String(),
	}
	if r, ok := p.(player.MetricReporter); ok {
		moveMetric.SearchMetric = r.LastMetric()
	}
	log.Debug().Str("game", e.ID).Int("step", moveMetric.Step).Msgf("%s played %s", side, move)
	return moveMetric, nil
}

func (e *LocalEngine) notify() {
	for _, v := range e.views {
		v.Update(e.Board)
	}
}
