package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/chess"
)

// undoEntry records the occupant a square held before a move, so the
// move can be reversed by restoring the entries in any order.
type undoEntry struct {
	pos     chess.Position
	tile    chess.Tile
	present bool
}

// moveRecord captures everything needed to reverse a performMove and to
// update the derived state afterwards.
type moveRecord struct {
	entries []undoEntry

	// captured holds the occupant of the destination square before the
	// move; for en passant the captured pawn is not on the destination
	// square and is only reflected in the capture flag.
	captured chess.Tile
	capture  bool
}

// MovePiece plays a move for the side on move.
//
// The move is validated against LegalMoves; ErrNoTile and
// ErrNotCurrentTurn propagate from that query and ErrInvalidMove is
// returned when the destination is not in the legal set. On success the
// board, castling rights, en passant target, clocks and turn are all
// updated. If the move pushed a pawn to its last rank, a promotion is
// left pending and must be resolved with Promote before the next move.
func (g *Game) MovePiece(from, to chess.Position) error {
	moves, err := g.LegalMoves(from)
	if err != nil {
		return err
	}
	if !slices.Contains(moves, to) {
		return fmt.Errorf("%s to %s: %w", from, to, ErrInvalidMove)
	}

	t, _ := g.board.Tile(from)
	rec := g.performMove(from, to)

	if rec.capture {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}

	g.epValid = false
	if t.Piece == chess.Pawn && abs(to.Rank()-from.Rank()) == 2 {
		passed, _ := from.Offset(0, (to.Rank()-from.Rank())/2)
		g.epTarget = passed
		g.epValid = true
	}

	if t.Piece == chess.King {
		*g.rights(t.Colour) = CastlingRights{}
	}
	if t.Piece == chess.Rook {
		g.clearRookRight(t.Colour, from)
	}
	if rec.capture && rec.captured.Piece == chess.Rook {
		g.clearRookRight(rec.captured.Colour, to)
	}

	if t.Piece == chess.Pawn && to.Rank() == lastRank(t.Colour) {
		g.promotion = to
		g.promotionPending = true
	}

	if g.toMove == chess.Black {
		g.fullmoveNumber++
	}
	g.toMove = g.toMove.Opposite()

	return nil
}

// performMove mutates the board for a move without touching the derived
// state, returning the record needed to reverse it. It is shared by
// MovePiece, the legality filter and the checkmate search; the caller
// guarantees the move is at least pseudo-legal, so it cannot fail.
func (g *Game) performMove(from, to chess.Position) moveRecord {
	t, _ := g.board.Tile(from)
	prev, prevOK := g.board.Tile(to)

	rec := moveRecord{
		entries:  []undoEntry{{from, t, true}, {to, prev, prevOK}},
		captured: prev,
		capture:  prevOK,
	}

	// A king travelling two files is castling; the rook jumps to the
	// square the king crossed.
	if t.Piece == chess.King && abs(to.File()-from.File()) == 2 {
		dir := sign(to.File() - from.File())
		if rookFrom, ok := g.castlingRook(from, dir, t.Colour); ok {
			crossed, _ := from.Offset(dir, 0)
			rook, _ := g.board.Tile(rookFrom)
			crossedPrev, crossedOK := g.board.Tile(crossed)
			rec.entries = append(rec.entries,
				undoEntry{rookFrom, rook, true},
				undoEntry{crossed, crossedPrev, crossedOK},
			)
			g.board.Remove(from)
			g.board.Remove(rookFrom)
			g.board.Place(to, t)
			g.board.Place(crossed, rook)
			return rec
		}
	}

	g.board.Remove(from)
	g.board.Place(to, t)

	// En passant lands on the passed-over square; the captured pawn
	// sits on the mover's starting rank.
	if t.Piece == chess.Pawn && g.epValid && to == g.epTarget {
		victim := chess.NewPosition(to.File(), from.Rank())
		vt, vok := g.board.Tile(victim)
		if vok {
			rec.entries = append(rec.entries, undoEntry{victim, vt, true})
			g.board.Remove(victim)
			rec.capture = true
		}
	}

	return rec
}

// undoMove restores every square a performMove touched. Each entry
// restores one square to its pre-move occupant, so the order of replay
// does not matter.
func (g *Game) undoMove(rec moveRecord) {
	for _, e := range rec.entries {
		g.board.PlaceOrRemove(e.pos, e.tile, e.present)
	}
}

// Promote resolves a pending promotion by replacing the promoted pawn
// with the chosen piece kind of the same colour.
//
// It panics when no promotion is pending or when the kind is not one of
// Queen, Rook, Bishop or Knight; both are API misuse, not recoverable
// conditions. The side to move is unaffected, having already flipped
// when the pawn moved.
func (g *Game) Promote(kind chess.Piece) {
	if !g.promotionPending {
		panic("engine: Promote called without a pending promotion")
	}
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		panic("engine: cannot promote to " + kind.String())
	}

	t, ok := g.board.Tile(g.promotion)
	if !ok {
		panic("engine: promotion square is empty")
	}
	g.board.Place(g.promotion, chess.Tile{Piece: kind, Colour: t.Colour})
	g.promotionPending = false
}

// clearRookRight drops the castling right for the flank whose rook
// starting square matches pos, when pos is on the colour's back rank.
func (g *Game) clearRookRight(colour chess.Colour, pos chess.Position) {
	backRank := 0
	if colour == chess.Black {
		backRank = 7
	}
	if pos.Rank() != backRank {
		return
	}
	r := g.rights(colour)
	switch pos.File() {
	case 0:
		r.Queenside = false
	case 7:
		r.Kingside = false
	}
}

// lastRank returns the promotion rank for the colour.
func lastRank(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
