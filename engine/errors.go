package engine

import "errors"

// Sentinel errors for move queries and move execution. Use these with
// errors.Is to check for specific failure conditions.
var (
	// ErrNoTile indicates that the queried square is empty.
	ErrNoTile = errors.New("no piece on the square")

	// ErrNotCurrentTurn indicates that the queried piece belongs to the
	// side that is not on move.
	ErrNotCurrentTurn = errors.New("piece belongs to the side not on move")

	// ErrInvalidMove indicates a destination that is not a legal move
	// for the piece.
	ErrInvalidMove = errors.New("invalid move")
)
