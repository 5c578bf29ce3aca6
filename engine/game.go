// Package engine implements the chess rules: move generation, legality,
// move execution and position import/export.
//
// A Game is exclusively owned by its caller and must not be shared
// across goroutines without external locking: the legality filter
// temporarily mutates and restores the board, so concurrent access
// would corrupt it.
package engine

import "github.com/lgbarn/chess-rules-go/chess"

// CastlingRights holds the two independent castling flags for one side.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Game holds a complete chess position: the board, the side to move,
// castling rights, the en passant target, a pending promotion, and the
// move clocks. It is mutated only through MovePiece and Promote.
//
// Promotion is a two-step turn: a pawn push to the last rank flips the
// side to move and sets a pending promotion, and the caller must resolve
// it with Promote before the next MovePiece. Between those two calls the
// promoting pawn still sits on its destination square.
type Game struct {
	board  *chess.Board
	toMove chess.Colour

	whiteRights CastlingRights
	blackRights CastlingRights

	// epTarget is the square a pawn passed over on a two-square push,
	// valid only when epValid is set and only for the very next move.
	epTarget chess.Position
	epValid  bool

	// promotion is the square of a pawn awaiting its promotion choice.
	promotion        chess.Position
	promotionPending bool

	halfmoveClock  int
	fullmoveNumber int
}

// StartingFEN is the FEN string for the standard starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New creates a game set up with the standard starting position.
func New() *Game {
	g, err := FromFEN(StartingFEN)
	if err != nil {
		panic("engine: starting position FEN is invalid: " + err.Error())
	}
	return g
}

// CurrentTurn returns the side to move.
func (g *Game) CurrentTurn() chess.Colour {
	return g.toMove
}

// Tile returns the occupant of the square, if any.
func (g *Game) Tile(pos chess.Position) (chess.Tile, bool) {
	return g.board.Tile(pos)
}

// Board returns a copy of the current board, suitable for rendering or
// inspection without aliasing the game's own state.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// CastlingRights returns the castling flags for the given colour.
func (g *Game) CastlingRights(colour chess.Colour) CastlingRights {
	if colour == chess.White {
		return g.whiteRights
	}
	return g.blackRights
}

// EnPassantTarget returns the square a pawn passed over on the previous
// move, when an en passant capture is available.
func (g *Game) EnPassantTarget() (chess.Position, bool) {
	return g.epTarget, g.epValid
}

// HalfmoveClock returns the halfmove clock. It is incremented on every
// move and reset on captures.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the fullmove number, incremented after each
// Black move.
func (g *Game) FullmoveNumber() int {
	return g.fullmoveNumber
}

// rights returns a pointer to the castling flags for the colour.
func (g *Game) rights(colour chess.Colour) *CastlingRights {
	if colour == chess.White {
		return &g.whiteRights
	}
	return &g.blackRights
}
