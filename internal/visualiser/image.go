package visualiser

import (
	"image"
	"image/png"
	"io"

	"github.com/banshee-data/cloudgrid/internal/grid"
)

// ColorImage converts a (b,g,r)-ordered colour grid into a stdlib RGBA
// image. This is the one place the storage order is swizzled back into
// reading order.
func ColorImage(g *grid.Grid8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			b, gr, r := g.At(y, x)
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = gr
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// WritePNG encodes the colour grid as a PNG stream.
func WritePNG(w io.Writer, g *grid.Grid8) error {
	return png.Encode(w, ColorImage(g))
}
