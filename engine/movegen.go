package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/chess"
)

// Single-step offset tables, as (deltaFile, deltaRank) pairs.
var (
	kingOffsets = [8][2]int{
		{-1, 1}, {0, 1}, {1, 1},
		{-1, 0}, {1, 0},
		{-1, -1}, {0, -1}, {1, -1},
	}
	knightOffsets = [8][2]int{
		{-1, 2}, {1, 2},
		{2, 1}, {2, -1},
		{-1, -2}, {1, -2},
		{-2, 1}, {-2, -1},
	}
	rookDirections = [4][2]int{
		{0, 1},
		{-1, 0}, {1, 0},
		{0, -1},
	}
	bishopDirections = [4][2]int{
		{-1, 1}, {1, 1},
		{-1, -1}, {1, -1},
	}
	queenDirections = [8][2]int{
		{-1, 1}, {0, 1}, {1, 1},
		{-1, 0}, {1, 0},
		{-1, -1}, {0, -1}, {1, -1},
	}
)

// LegalMoves returns the legal destination squares for the piece on
// `from`, sorted by file then rank.
//
// Legal moves follow the piece's movement rules, stay on the board,
// respect blocking pieces, and do not leave the mover's own king
// attacked. Castling and en passant are included when they qualify.
//
// It returns ErrNoTile when the square is empty and ErrNotCurrentTurn
// when the piece belongs to the side not on move.
func (g *Game) LegalMoves(from chess.Position) ([]chess.Position, error) {
	t, ok := g.board.Tile(from)
	if !ok {
		return nil, ErrNoTile
	}
	if t.Colour != g.toMove {
		return nil, ErrNotCurrentTurn
	}

	var legal []chess.Position
	for _, to := range g.pseudoLegalMoves(from, true) {
		rec := g.performMove(from, to)
		safe := !g.IsInCheck(t.Colour)
		g.undoMove(rec)
		if safe {
			legal = append(legal, to)
		}
	}

	slices.SortFunc(legal, comparePositions)
	return legal, nil
}

// comparePositions orders positions by file, then by rank.
func comparePositions(a, b chess.Position) int {
	if a.File() != b.File() {
		return a.File() - b.File()
	}
	return a.Rank() - b.Rank()
}

// pseudoLegalMoves returns the moves that obey piece movement and board
// geometry but may leave the mover's king attacked. Castling is only
// generated when includeCastling is set; the attack detector passes
// false to break the recursion between castling qualification and
// attack detection.
//
// The square must be occupied.
func (g *Game) pseudoLegalMoves(from chess.Position, includeCastling bool) []chess.Position {
	t, ok := g.board.Tile(from)
	if !ok {
		panic("engine: pseudo-legal moves requested for an empty square")
	}

	var moves []chess.Position
	switch t.Piece {
	case chess.King:
		moves = g.singleStepMoves(moves, from, t.Colour, kingOffsets[:])
		if includeCastling {
			moves = g.castlingMoves(moves, from, t.Colour)
		}
	case chess.Queen:
		moves = g.slidingMoves(moves, from, t.Colour, queenDirections[:])
	case chess.Rook:
		moves = g.slidingMoves(moves, from, t.Colour, rookDirections[:])
	case chess.Bishop:
		moves = g.slidingMoves(moves, from, t.Colour, bishopDirections[:])
	case chess.Knight:
		moves = g.singleStepMoves(moves, from, t.Colour, knightOffsets[:])
	case chess.Pawn:
		moves = g.pawnMoves(moves, from, t.Colour)
	}
	return moves
}

// singleStepMoves adds the offsets that land on the board and are not
// blocked by a friendly piece.
func (g *Game) singleStepMoves(moves []chess.Position, from chess.Position, friendly chess.Colour, offsets [][2]int) []chess.Position {
	for _, o := range offsets {
		to, ok := from.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if t, occupied := g.board.Tile(to); occupied && t.Colour == friendly {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// slidingMoves walks each direction one step at a time, adding empty
// squares, adding the first enemy square and stopping, and stopping
// without adding on a friendly piece or the board edge.
func (g *Game) slidingMoves(moves []chess.Position, from chess.Position, friendly chess.Colour, directions [][2]int) []chess.Position {
	for _, d := range directions {
		pos := from
		for {
			to, ok := pos.Offset(d[0], d[1])
			if !ok {
				break
			}
			t, occupied := g.board.Tile(to)
			if occupied {
				if t.Colour != friendly {
					moves = append(moves, to)
				}
				break
			}
			moves = append(moves, to)
			pos = to
		}
	}
	return moves
}

// pawnMoves adds the bespoke pawn moves: a single push to an empty
// square, a double push from the starting rank when both squares ahead
// are empty, diagonal captures, and the en passant capture.
func (g *Game) pawnMoves(moves []chess.Position, from chess.Position, colour chess.Colour) []chess.Position {
	dir := colour.Offset()

	if to, ok := from.Offset(0, dir); ok {
		if _, occupied := g.board.Tile(to); !occupied {
			moves = append(moves, to)
		}
	}

	// Pawns never move backwards, so standing on the starting rank
	// means the pawn has not moved yet.
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}
	if from.Rank() == startRank {
		mid, okMid := from.Offset(0, dir)
		to, okTo := from.Offset(0, 2*dir)
		if okMid && okTo {
			_, midOccupied := g.board.Tile(mid)
			_, toOccupied := g.board.Tile(to)
			if !midOccupied && !toOccupied {
				moves = append(moves, to)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if t, occupied := g.board.Tile(to); occupied {
			if t.Colour != colour {
				moves = append(moves, to)
			}
			continue
		}
		// En passant: the capture lands on the square the enemy pawn
		// passed over, while the pawn itself sits beside the mover.
		if g.epValid && to == g.epTarget {
			side, ok := from.Offset(df, 0)
			if !ok {
				continue
			}
			if t, occupied := g.board.Tile(side); occupied && t.Piece == chess.Pawn && t.Colour != colour {
				moves = append(moves, to)
			}
		}
	}

	return moves
}

// castlingMoves adds the castling landing squares for each flank where
// the right is still held, the king's square and the square it crosses
// are not attacked, and the first occupant outward from the king is the
// friendly rook. The landing square itself is vetted by the legality
// filter like any other king move.
func (g *Game) castlingMoves(moves []chess.Position, from chess.Position, colour chess.Colour) []chess.Position {
	rights := g.CastlingRights(colour)
	enemy := colour.Opposite()

	for _, side := range [2]struct {
		dir     int
		allowed bool
	}{
		{dir: 1, allowed: rights.Kingside},
		{dir: -1, allowed: rights.Queenside},
	} {
		if !side.allowed {
			continue
		}
		crossed, ok := from.Offset(side.dir, 0)
		if !ok {
			continue
		}
		landing, ok := from.Offset(2*side.dir, 0)
		if !ok {
			continue
		}
		if g.isAttacked(from, enemy) || g.isAttacked(crossed, enemy) {
			continue
		}
		if _, ok := g.castlingRook(from, side.dir, colour); !ok {
			continue
		}
		moves = append(moves, landing)
	}
	return moves
}

// castlingRook slides outward from the king and returns the square of
// the first occupant, provided it is a friendly rook. Stopping at the
// first occupant means the squares between king and rook are implicitly
// required to be empty.
func (g *Game) castlingRook(from chess.Position, dir int, colour chess.Colour) (chess.Position, bool) {
	pos := from
	for {
		next, ok := pos.Offset(dir, 0)
		if !ok {
			return chess.Position{}, false
		}
		pos = next
		if t, occupied := g.board.Tile(pos); occupied {
			if t.Piece == chess.Rook && t.Colour == colour {
				return pos, true
			}
			return chess.Position{}, false
		}
	}
}
