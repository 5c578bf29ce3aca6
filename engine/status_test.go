package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewGameNotInCheck(t *testing.T) {
	g := New()

	testutil.AssertFalse(t, g.IsInCheck(chess.White))
	testutil.AssertFalse(t, g.IsInCheck(chess.Black))
	testutil.AssertEqual(t, g.State().Kind, StateNormal)
}

func TestCheckState(t *testing.T) {
	g := mustGame(t, "rnbqkbnr/pppp2pp/6Q1/4pp2/8/4P3/PPPP1PPP/RNB1KBNR b KQkq - 0 1")

	testutil.AssertFalse(t, g.IsInCheck(chess.White))
	testutil.AssertTrue(t, g.IsInCheck(chess.Black))

	state := g.State()
	testutil.AssertEqual(t, state.Kind, StateCheck)
	testutil.AssertEqual(t, state.Colour, chess.Black)
}

func TestCheckmateCorner(t *testing.T) {
	g := mustGame(t, "8/8/8/5K1k/8/8/8/7R w - - 0 1")

	testutil.AssertTrue(t, g.IsCheckmate(chess.Black))
	testutil.AssertFalse(t, g.IsCheckmate(chess.White))
}

func TestCheckmateByrneFischer(t *testing.T) {
	// D. Byrne vs. Fischer, 1956: final mating position.
	g := mustGame(t, "1Q6/5pk1/2p3p1/1p2N2p/1b5P/1bn5/2r3P1/2K5 b - - 0 1")

	testutil.AssertTrue(t, g.IsCheckmate(chess.White))
	testutil.AssertFalse(t, g.IsCheckmate(chess.Black))
}

func TestCheckmateState(t *testing.T) {
	// Fool's mate.
	g := New()
	for _, m := range [][2]string{
		{"f2", "f3"}, {"e7", "e5"},
		{"g2", "g4"}, {"d8", "h4"},
	} {
		move(t, g, m[0], m[1])
	}

	state := g.State()
	testutil.AssertEqual(t, state.Kind, StateCheckmate)
	testutil.AssertEqual(t, state.Colour, chess.White)
}

func TestCheckEscapableByBlock(t *testing.T) {
	// The rook on e8 checks along the e-file, but Rd2-e2 blocks, so
	// this is check, not mate.
	g := mustGame(t, "4r2k/8/8/8/8/8/3R4/4K3 w - - 0 1")

	state := g.State()
	testutil.AssertEqual(t, state.Kind, StateCheck)
	testutil.AssertEqual(t, state.Colour, chess.White)
}

func TestNoKingMeansNoCheck(t *testing.T) {
	g := mustGame(t, "8/8/8/8/2p1R3/8/8/8 w - - 0 1")

	testutil.AssertFalse(t, g.IsInCheck(chess.Black))
	testutil.AssertFalse(t, g.IsCheckmate(chess.Black))
	testutil.AssertEqual(t, g.State().Kind, StateNormal)
}

func TestStalemateReportsNormal(t *testing.T) {
	// Black to move is stalemated; draw detection is out of scope, so
	// the classifier reports Normal.
	g := mustGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	testutil.AssertFalse(t, g.IsInCheck(chess.Black))
	testutil.AssertEqual(t, g.State().Kind, StateNormal)
}

func TestStateKindString(t *testing.T) {
	tests := []struct {
		kind StateKind
		want string
	}{
		{StateNormal, "Normal"},
		{StateCheck, "Check"},
		{StateCheckmate, "Checkmate"},
		{StatePromotionRequired, "PromotionRequired"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("StateKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
