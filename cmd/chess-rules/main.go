// chess-rules is a tool for inspecting chess positions: legal moves,
// game state, FEN round-tripping, and board diagrams.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/chess"
	"github.com/lgbarn/chess-rules-go/engine"
	"github.com/lgbarn/chess-rules-go/render"
)

const programVersion = "0.1.0"

var (
	fenFlag   = flag.String("fen", "", "Position to inspect in FEN (default: starting position)")
	movesFlag = flag.String("moves", "", "List legal moves for the piece on this square (e.g. e2)")
	stateFlag = flag.Bool("state", false, "Print the game state (normal, check, checkmate)")
	svgFile   = flag.String("svg", "", "Write an SVG diagram of the position to this file")
	pngFile   = flag.String("png", "", "Write a PNG diagram of the position to this file")
	sizeFlag  = flag.Int("size", 360, "Diagram size in pixels")
	quiet     = flag.Bool("q", false, "Don't print the board to stdout")
	version   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	fen := *fenFlag
	if fen == "" {
		fen = engine.StartingFEN
	}

	game, err := engine.FromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		printBoard(game)
		fmt.Printf("%s to move\n", game.CurrentTurn())
	}

	if *stateFlag {
		printState(game)
	}

	if *movesFlag != "" {
		if err := printMoves(game, *movesFlag); err != nil {
			fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
			os.Exit(1)
		}
	}

	if *svgFile != "" {
		err := writeDiagram(*svgFile, func(f *os.File) error {
			render.WriteSVG(f, game.Board(), *sizeFlag)
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
			os.Exit(1)
		}
	}

	if *pngFile != "" {
		err := writeDiagram(*pngFile, func(f *os.File) error {
			return render.WritePNG(f, game.Board(), *sizeFlag)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
			os.Exit(1)
		}
	}
}

// printBoard writes an ASCII rendering of the board, rank 8 at the top.
func printBoard(game *engine.Game) {
	board := game.Board()
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			t, present := board.Tile(chess.NewPosition(file, rank))
			if !present {
				fmt.Print(". ")
				continue
			}
			fmt.Printf("%c ", t.Letter())
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}

func printState(game *engine.Game) {
	st := game.State()
	switch st.Kind {
	case engine.StateCheckmate:
		fmt.Printf("checkmate: %s loses\n", st.Colour)
	case engine.StateCheck:
		fmt.Printf("check against %s\n", st.Colour)
	case engine.StatePromotionRequired:
		fmt.Printf("promotion required on %s\n", st.Square)
	default:
		fmt.Println("normal")
	}
}

func printMoves(game *engine.Game, square string) error {
	from, err := chess.ParsePosition(square)
	if err != nil {
		return fmt.Errorf("square %q: %w", square, err)
	}
	moves, err := game.LegalMoves(from)
	if err != nil {
		return fmt.Errorf("moves from %s: %w", from, err)
	}
	if len(moves) == 0 {
		fmt.Printf("no legal moves from %s\n", from)
		return nil
	}
	targets := make([]string, len(moves))
	for i, to := range moves {
		targets[i] = to.String()
	}
	fmt.Printf("%s: %s\n", from, strings.Join(targets, " "))
	return nil
}

func writeDiagram(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "A tool for inspecting chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -moves e2\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -fen \"8/P7/8/8/8/8/8/K6k w - - 0 1\" -state\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -png board.png -size 512\n")
}
