package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/chess"
)

// IsInCheck returns true if the given colour's king is attacked. A side
// with no king on the board is deemed not in check.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	kingPos, ok := g.findKing(colour)
	if !ok {
		return false
	}
	return g.isAttacked(kingPos, colour.Opposite())
}

// findKing returns the square of the given colour's king.
func (g *Game) findKing(colour chess.Colour) (chess.Position, bool) {
	want := chess.Tile{Piece: chess.King, Colour: colour}
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			pos := chess.NewPosition(file, rank)
			if t, ok := g.board.Tile(pos); ok && t == want {
				return pos, true
			}
		}
	}
	return chess.Position{}, false
}

// isAttacked returns true if any piece of the given colour has pos in
// its pseudo-legal move set. Castling is excluded from those sets:
// castling qualification calls isAttacked, and a castling move can never
// capture anyway.
func (g *Game) isAttacked(pos chess.Position, by chess.Colour) bool {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := chess.NewPosition(file, rank)
			t, ok := g.board.Tile(sq)
			if !ok || t.Colour != by {
				continue
			}
			if slices.Contains(g.pseudoLegalMoves(sq, false), pos) {
				return true
			}
		}
	}
	return false
}
