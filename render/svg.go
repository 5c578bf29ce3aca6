// Package render draws board diagrams as SVG or PNG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/chess"
)

// Square colours, following the common lichess palette.
const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
)

// glyphs maps tiles to the Unicode chess figurines.
var glyphs = map[chess.Tile]string{
	{Piece: chess.King, Colour: chess.White}:   "♔",
	{Piece: chess.Queen, Colour: chess.White}:  "♕",
	{Piece: chess.Rook, Colour: chess.White}:   "♖",
	{Piece: chess.Bishop, Colour: chess.White}: "♗",
	{Piece: chess.Knight, Colour: chess.White}: "♘",
	{Piece: chess.Pawn, Colour: chess.White}:   "♙",
	{Piece: chess.King, Colour: chess.Black}:   "♚",
	{Piece: chess.Queen, Colour: chess.Black}:  "♛",
	{Piece: chess.Rook, Colour: chess.Black}:   "♜",
	{Piece: chess.Bishop, Colour: chess.Black}: "♝",
	{Piece: chess.Knight, Colour: chess.Black}: "♞",
	{Piece: chess.Pawn, Colour: chess.Black}:   "♟",
}

// WriteSVG writes the board as an SVG diagram of size x size pixels,
// with rank 8 at the top and the a-file on the left.
func WriteSVG(w io.Writer, board *chess.Board, size int) {
	if size < 8 {
		size = 8
	}
	square := size / 8

	canvas := svg.New(w)
	canvas.Start(8*square, 8*square)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * square
			y := (7 - rank) * square

			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, square, square, fill)

			tile, ok := board.Tile(chess.NewPosition(file, rank))
			if !ok {
				continue
			}
			canvas.Text(x+square/2, y+square*3/4, glyphs[tile],
				textStyle(square))
		}
	}

	for file := 0; file < 8; file++ {
		canvas.Text(file*square+square-square/10, 8*square-square/16,
			string(rune('a'+file)), labelStyle(square, file%2 == 0))
	}
	for rank := 7; rank >= 0; rank-- {
		canvas.Text(square/16, (7-rank)*square+square/4,
			fmt.Sprintf("%d", rank+1), labelStyle(square, rank%2 == 0))
	}

	canvas.End()
}

// textStyle centers a figurine in its square.
func textStyle(square int) string {
	return fmt.Sprintf("text-anchor:middle;font-size:%dpx", square*3/4)
}

// labelStyle renders a coordinate label in the opposite square colour
// so it stays readable on both shades.
func labelStyle(square int, onDark bool) string {
	colour := "#b58863"
	if onDark {
		colour = "#f0d9b5"
	}
	return fmt.Sprintf("font-size:%dpx;fill:%s", square/4, colour)
}
