package chess

import "strings"

// Board is an 8x8 grid of optional tiles. The zero value is an empty
// board. Boards are copied by value with a simple assignment.
type Board struct {
	// tiles[rank][file]; a Tile with Piece == NoPiece is an empty square.
	tiles [8][8]Tile
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Tile returns the occupant at the position. The second return value is
// false when the square is empty.
func (b *Board) Tile(pos Position) (Tile, bool) {
	t := b.tiles[pos.Rank()][pos.File()]
	return t, t.Piece != NoPiece
}

// Place puts a tile on the position, replacing any occupant.
func (b *Board) Place(pos Position, t Tile) {
	b.tiles[pos.Rank()][pos.File()] = t
}

// Remove clears the position and returns the previous occupant, if any.
func (b *Board) Remove(pos Position) (Tile, bool) {
	t := b.tiles[pos.Rank()][pos.File()]
	b.tiles[pos.Rank()][pos.File()] = Tile{}
	return t, t.Piece != NoPiece
}

// PlaceOrRemove places the tile when present is true and clears the
// square otherwise. It restores a square to a previously observed state.
func (b *Board) PlaceOrRemove(pos Position, t Tile, present bool) {
	if present {
		b.Place(pos, t)
	} else {
		b.tiles[pos.Rank()][pos.File()] = Tile{}
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// ParsePlacement creates a board from the placement field of a FEN
// string: eight rank strings separated by "/", emitted from rank 8 down
// to rank 1, with digits for runs of empty squares and piece letters
// whose case gives the colour.
//
// The argument must be only the placement field, not a full FEN string.
func ParsePlacement(placement string) (*Board, error) {
	board := NewBoard()

	file := 0
	rank := 7
	for _, c := range placement {
		switch {
		case c >= '0' && c <= '9':
			skip := int(c - '0')
			if skip > 8 || file > 8 {
				return nil, &FENError{Kind: FENLargeSkip}
			}
			file += skip
		case c == '/':
			file = 0
			rank--
		default:
			lower := c
			colour := Black
			if c >= 'A' && c <= 'Z' {
				lower = c + ('a' - 'A')
				colour = White
			}
			piece, ok := PieceFromLetter(byte(lower))
			if !ok {
				return nil, &FENError{Kind: FENInvalidPiece, Char: lower}
			}
			if file > 7 || rank < 0 || rank > 7 {
				return nil, &FENError{Kind: FENOutsideBoard, File: file, Rank: rank}
			}
			board.Place(NewPosition(file, rank), Tile{Piece: piece, Colour: colour})
			file++
		}
	}

	return board, nil
}

// Placement renders the board as the placement field of a FEN string,
// the inverse of ParsePlacement.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			t, ok := b.Tile(NewPosition(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(t.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
