// Package chess provides the core chess types: colours, piece kinds,
// board positions and the board itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Offset returns the forward direction for pawns of this colour:
// +1 for White, -1 for Black.
func (c Colour) Offset() int {
	if c == White {
		return 1
	}
	return -1
}

// Piece represents a chess piece kind. The zero value NoPiece marks an
// empty square.
type Piece int

const (
	NoPiece Piece = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"NoPiece", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the lowercase single-letter code for a piece kind.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'k', 'q', 'r', 'b', 'n', 'p'}
	if p > NoPiece && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter returns the piece kind for a lowercase code letter.
func PieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'k':
		return King, true
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	case 'p':
		return Pawn, true
	default:
		return NoPiece, false
	}
}

// Tile is an occupant of a board square: a piece kind and its colour.
type Tile struct {
	Piece  Piece
	Colour Colour
}

// Letter returns the FEN letter for the tile: uppercase for White,
// lowercase for Black.
func (t Tile) Letter() byte {
	c := t.Piece.Letter()
	if t.Colour == White && c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}
