package render

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lgbarn/chess-rules-go/chess"
)

// WritePNG rasterizes the SVG diagram of the board into a size x size
// PNG image. Figurines depend on the rasterizer's text support; the
// board geometry always renders.
func WritePNG(w io.Writer, board *chess.Board, size int) error {
	var buf bytes.Buffer
	WriteSVG(&buf, board, size)

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return png.Encode(w, rgba)
}
