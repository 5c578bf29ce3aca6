package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestFromFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 1 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2",
		"4k3/2P5/8/8/8/8/8/4K3 w - - 0 1",
		"8/8/8/5K1k/8/8/8/7R w - - 0 1",
		"1Q6/5pk1/2p3p1/1p2N2p/1b5P/1bn5/2r3P1/2K5 b - - 0 1",
		"4k3/8/8/8/2p5/8/1P6/4K3 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		"8/8/8/8/8/8/8/8 w - - 99 120",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := mustGame(t, fen)
			testutil.AssertEqual(t, g.FEN(), fen)
		})
	}
}

func TestFromFENFields(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R b Kq e3 12 34")

	testutil.AssertEqual(t, g.CurrentTurn(), chess.Black)
	testutil.AssertEqual(t, g.CastlingRights(chess.White),
		CastlingRights{Kingside: true, Queenside: false})
	testutil.AssertEqual(t, g.CastlingRights(chess.Black),
		CastlingRights{Kingside: false, Queenside: true})

	target, ok := g.EnPassantTarget()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, target.String(), "e3")

	testutil.AssertEqual(t, g.HalfmoveClock(), 12)
	testutil.AssertEqual(t, g.FullmoveNumber(), 34)
}

func TestFromFENErrors(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantKind chess.FENErrorKind
	}{
		{"empty string", "", chess.FENTooShort},
		{"placement only", "8/8/8/8/8/8/8/8", chess.FENTooShort},
		{"five fields", "8/8/8/8/8/8/8/8 w - - 0", chess.FENTooShort},
		{"bad turn", "8/8/8/8/8/8/8/8 x - - 0 1", chess.FENInvalidTurn},
		{"bad en passant square", "8/8/8/8/8/8/8/8 w - e33 0 1", chess.FENInvalidEnPassantTarget},
		{"en passant not a square", "8/8/8/8/8/8/8/8 w - ee 0 1", chess.FENInvalidEnPassantTarget},
		{"large skip", "9/8/8/8/8/8/8/8 w - - 0 1", chess.FENLargeSkip},
		{"bad piece", "x7/8/8/8/8/8/8/8 w - - 0 1", chess.FENInvalidPiece},
		{"rank overflow", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1", chess.FENOutsideBoard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFEN(tt.fen)
			if err == nil {
				t.Fatalf("FromFEN(%q) succeeded, want error", tt.fen)
			}
			if !errors.Is(err, chess.ErrInvalidFEN) {
				t.Errorf("error %v does not match chess.ErrInvalidFEN", err)
			}
			var fenErr *chess.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("error %v is not a *chess.FENError", err)
			}
			if fenErr.Kind != tt.wantKind {
				t.Errorf("error kind = %v, want %v", fenErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestFromFENInvalidEnPassantUnwraps(t *testing.T) {
	_, err := FromFEN("8/8/8/8/8/8/8/8 w - e33 0 1")

	if !errors.Is(err, chess.ErrPositionTooLong) {
		t.Errorf("error %v does not unwrap to the position parse error", err)
	}
}

func TestNewStartingPosition(t *testing.T) {
	g := New()

	testutil.AssertEqual(t, g.FEN(), StartingFEN)
	testutil.AssertEqual(t, g.CurrentTurn(), chess.White)

	tile, ok := g.Tile(pos(t, "e1"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, tile, chess.Tile{Piece: chess.King, Colour: chess.White})

	tile, ok = g.Tile(pos(t, "d8"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, tile, chess.Tile{Piece: chess.Queen, Colour: chess.Black})
}

// TestRoundTripThroughPlay checks that export after a line of legal
// moves imports back to the identical state.
func TestRoundTripThroughPlay(t *testing.T) {
	g := New()
	for _, m := range [][2]string{
		{"e2", "e4"}, {"c7", "c5"},
		{"g1", "f3"}, {"d7", "d6"},
		{"d2", "d4"}, {"c5", "d4"},
		{"f3", "d4"}, {"g8", "f6"},
	} {
		move(t, g, m[0], m[1])
	}

	fen := g.FEN()
	testutil.AssertEqual(t, mustGame(t, fen).FEN(), fen)
}
