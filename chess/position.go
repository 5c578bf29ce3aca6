package chess

import "fmt"

// Position identifies a square on the board.
//
// The file is a number in [0, 7] where 0 is the a-file and 7 the h-file.
// The rank is a number in [0, 7] where 0 is the rank displayed as 1 and
// 7 the rank displayed as 8. The position b4 therefore has file 1 and
// rank 3.
//
// The zero value is a1. Positions are comparable and usable as map keys.
type Position struct {
	file int
	rank int
}

// NewPosition creates a position. It panics if file or rank is outside
// the inclusive range [0, 7]; out-of-range construction is a programming
// error, not a recoverable condition.
func NewPosition(file, rank int) Position {
	if file < 0 || file > 7 {
		panic(fmt.Sprintf("chess: file must be in the inclusive range [0, 7], got %d", file))
	}
	if rank < 0 || rank > 7 {
		panic(fmt.Sprintf("chess: rank must be in the inclusive range [0, 7], got %d", rank))
	}
	return Position{file: file, rank: rank}
}

// File returns the file as a number in [0, 7]. This is not the
// human-readable file letter; see FileChar.
func (p Position) File() int {
	return p.file
}

// Rank returns the rank as a number in [0, 7]. This is not the
// human-readable rank digit.
func (p Position) Rank() int {
	return p.rank
}

// FileChar returns the lowercase letter for the file, 'a' through 'h'.
func (p Position) FileChar() byte {
	return byte('a' + p.file)
}

// Offset returns the position shifted by the given file and rank deltas.
// The second return value is false when the shifted position falls
// outside the board.
func (p Position) Offset(deltaFile, deltaRank int) (Position, bool) {
	file := p.file + deltaFile
	rank := p.rank + deltaRank
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Position{}, false
	}
	return Position{file: file, rank: rank}, true
}

// String returns the algebraic form of the position, e.g. "e4".
func (p Position) String() string {
	return string([]byte{p.FileChar(), byte('1' + p.rank)})
}

// ParsePosition parses an algebraic square name such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) < 2 {
		return Position{}, ErrPositionTooShort
	}
	if len(s) > 2 {
		return Position{}, ErrPositionTooLong
	}
	if s[1] < '0' || s[1] > '9' {
		return Position{}, ErrPositionInvalidRank
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Position{}, fmt.Errorf("square %q is outside the board: %w", s, ErrPositionOutsideBoard)
	}
	return Position{file: file, rank: rank}, nil
}
