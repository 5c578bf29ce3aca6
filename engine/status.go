package engine

import "github.com/lgbarn/chess-rules-go/chess"

// StateKind labels the phase a game is in after a move.
type StateKind int

const (
	// StateNormal is any position with no pending promotion where the
	// side to move is not in check.
	StateNormal StateKind = iota

	// StateCheck means the side to move is in check.
	StateCheck

	// StateCheckmate means the side to move is in check and has no
	// legal move; the game is over.
	StateCheckmate

	// StatePromotionRequired means a pawn reached its last rank and the
	// caller must call Promote before the next move.
	StatePromotionRequired
)

// String returns the string representation of a state kind.
func (k StateKind) String() string {
	switch k {
	case StateNormal:
		return "Normal"
	case StateCheck:
		return "Check"
	case StateCheckmate:
		return "Checkmate"
	case StatePromotionRequired:
		return "PromotionRequired"
	default:
		return "Unknown"
	}
}

// State describes the current phase of the game. Colour is the side in
// check or checkmated, valid for StateCheck and StateCheckmate. Square
// is the promotion square, valid for StatePromotionRequired.
type State struct {
	Kind   StateKind
	Colour chess.Colour
	Square chess.Position
}

// State classifies the current position. A pending promotion takes
// priority over everything else; checkmate over check; otherwise the
// position is normal. Check and checkmate are evaluated for the side to
// move.
func (g *Game) State() State {
	if g.promotionPending {
		return State{Kind: StatePromotionRequired, Square: g.promotion}
	}
	colour := g.toMove
	if g.IsCheckmate(colour) {
		return State{Kind: StateCheckmate, Colour: colour}
	}
	if g.IsInCheck(colour) {
		return State{Kind: StateCheck, Colour: colour}
	}
	return State{Kind: StateNormal}
}

// IsCheckmate returns true if the given colour is in check and no move
// of any of its pieces removes the check. Every pseudo-legal move is
// tried with the perform/undo primitive; castling is skipped since the
// king's own square is attacked and castling out of check is never
// legal.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	if !g.IsInCheck(colour) {
		return false
	}
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			pos := chess.NewPosition(file, rank)
			t, ok := g.board.Tile(pos)
			if !ok || t.Colour != colour {
				continue
			}
			for _, to := range g.pseudoLegalMoves(pos, false) {
				rec := g.performMove(pos, to)
				escaped := !g.IsInCheck(colour)
				g.undoMove(rec)
				if escaped {
					return false
				}
			}
		}
	}
	return true
}
