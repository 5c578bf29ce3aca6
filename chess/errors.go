package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for position parsing. Use these with errors.Is.
var (
	// ErrPositionTooShort indicates a square name with fewer than two characters.
	ErrPositionTooShort = errors.New("string too short")

	// ErrPositionTooLong indicates a square name with more than two characters.
	ErrPositionTooLong = errors.New("string too long")

	// ErrPositionInvalidRank indicates a square name whose second character
	// is not a digit.
	ErrPositionInvalidRank = errors.New("second character must be a digit")

	// ErrPositionOutsideBoard indicates a square name that names a file or
	// rank beyond the 8x8 board.
	ErrPositionOutsideBoard = errors.New("position outside the board")
)

// ErrInvalidFEN indicates a malformed FEN string. All FEN import errors
// match it via errors.Is.
var ErrInvalidFEN = errors.New("invalid FEN string")

// FENErrorKind enumerates the ways FEN import can fail.
type FENErrorKind int

const (
	// FENLargeSkip indicates an empty-run digit larger than 8.
	FENLargeSkip FENErrorKind = iota

	// FENOutsideBoard indicates the placement cursor left the board.
	FENOutsideBoard

	// FENInvalidPiece indicates an unknown piece letter.
	FENInvalidPiece

	// FENTooShort indicates a missing FEN field.
	FENTooShort

	// FENInvalidTurn indicates a side-to-move field other than "w" or "b".
	FENInvalidTurn

	// FENInvalidEnPassantTarget indicates an unparseable en passant square.
	FENInvalidEnPassantTarget
)

// FENError is a structured FEN import error. It unwraps to ErrInvalidFEN
// (and to the underlying position error for en passant targets), so both
// errors.Is and errors.As work through it.
type FENError struct {
	Kind FENErrorKind

	// File and Rank hold the cursor for FENOutsideBoard.
	File int
	Rank int

	// Char holds the offending letter for FENInvalidPiece.
	Char rune

	// Text holds the offending field for FENInvalidTurn.
	Text string

	// Err holds the underlying error for FENInvalidEnPassantTarget.
	Err error
}

// Error returns a formatted message for the import failure.
func (e *FENError) Error() string {
	switch e.Kind {
	case FENLargeSkip:
		return "invalid FEN: empty-square run larger than 8"
	case FENOutsideBoard:
		return fmt.Sprintf("invalid FEN: placement outside the board at file %d, rank %d", e.File, e.Rank)
	case FENInvalidPiece:
		return fmt.Sprintf("invalid FEN: unknown piece letter %q", e.Char)
	case FENTooShort:
		return "invalid FEN: missing field"
	case FENInvalidTurn:
		return fmt.Sprintf("invalid FEN: side to move %q", e.Text)
	case FENInvalidEnPassantTarget:
		return fmt.Sprintf("invalid FEN: en passant target: %v", e.Err)
	default:
		return "invalid FEN"
	}
}

// Unwrap returns the underlying error, if any.
func (e *FENError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidFEN
}

// Is reports whether the error matches ErrInvalidFEN.
func (e *FENError) Is(target error) bool {
	return target == ErrInvalidFEN
}
