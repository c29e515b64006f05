package game

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrBadSquare   = errors.New("invalid square")
	ErrBadMove     = errors.New("invalid move notation")
	ErrBadLayout   = errors.New("invalid board layout")
	ErrMoveLimit   = errors.New("move limit already reached")
)
