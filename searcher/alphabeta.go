package searcher

import (
	"tablut/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *AlphaBeta)

// AlphaBeta is a depth-limited minimax player with alpha-beta pruning. Only
// the best root move of the last search survives between calls.
type AlphaBeta struct {
	depth         int // 0 picks the depth from the move count
	evaluate      game.Evaluate
	metrics       Collector
	lastFoundMove game.Move
}

// WithDepth fixes the search depth instead of deriving it from the game's
// progress.
func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		evaluate:      game.EvaluateMobility,
		metrics:       NewDummyCollector(),
		lastFoundMove: game.NoMove,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ChooseMove returns a move for the side to move on b. The caller must make
// sure that side has a legal move; b itself is never modified.
func (s *AlphaBeta) ChooseMove(b *game.Board) game.Move {
	move, _ := s.FindMove(b)
	return move
}

// FindMove is ChooseMove that also reports search statistics.
func (s *AlphaBeta) FindMove(b *game.Board) (game.Move, SearchMetric) {
	if b.Winner() != game.NoSide || !b.HasMove(b.Turn()) {
		panic("FindMove called without a legal move for " + b.Turn().String())
	}
	board := b.Copy()
	depth := s.depth
	if depth == 0 {
		depth = depthForMoveCount(board.MoveCount())
	}

	s.metrics.Start(depth)
	s.lastFoundMove = game.NoMove
	value := s.findMove(board, depth, true, senseFor(board.Turn()), -Infinity, Infinity)
	if s.lastFoundMove == game.NoMove {
		// Every value fell outside the window; any move is as good.
		s.lastFoundMove = board.LegalMoves(board.Turn())[0]
	}
	metric := s.metrics.Complete()
	metric.Depth = depth
	metric.Value = value

	log.Debug().
		Str("side", b.Turn().String()).
		Str("move", s.lastFoundMove.String()).
		Int("depth", depth).
		Int("value", value).
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Msg("search complete")
	return s.lastFoundMove, metric
}

// LastFoundMove returns the root move chosen by the most recent search.
func (s *AlphaBeta) LastFoundMove() game.Move {
	return s.lastFoundMove
}

// findMove searches depth plies below board and returns its value, recording
// the root move in lastFoundMove when saveMove is set. A maximizing level
// raises alpha and a minimizing level lowers beta. Once the window closes the
// search returns the value of the child that closed it rather than the bound.
func (s *AlphaBeta) findMove(board *game.Board, depth int, saveMove bool, sense Sense, alpha, beta int) int {
	if board.Winner() != game.NoSide || depth == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(board)
	}

	for _, move := range board.LegalMoves(board.Turn()) {
		if err := board.Play(move); err != nil {
			panic("generated move rejected: " + err.Error())
		}
		s.metrics.AddNode()
		value := s.findMove(board, depth-1, false, -sense, alpha, beta)
		board.Undo()

		switch sense {
		case Maximize:
			if value > alpha {
				alpha = value
				if saveMove {
					s.lastFoundMove = move
				}
			}
		case Minimize:
			if value < beta {
				beta = value
				if saveMove {
					s.lastFoundMove = move
				}
			}
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			return value
		}
	}

	if sense == Maximize {
		return alpha
	}
	return beta
}
