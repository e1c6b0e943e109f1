package cloud

import (
	"fmt"
	"math"

	"github.com/banshee-data/cloudgrid/internal/grid"
)

// ToImages converts a structured cloud into a pair of image grids: a
// position grid with the (x,y,z) of each point in three float64 channels,
// and a colour grid with the point colours in (b,g,r) channel order.
//
// Only organised clouds convert: width and height must both be > 1, and
// both must fit in a signed 32-bit range so the grids can be indexed the
// way downstream image tooling expects. All checks run before anything is
// allocated, so a failed call produces no partial output.
func ToImages(c *Cloud) (pos *grid.Grid64, color *grid.Grid8, err error) {
	if c.Width <= 1 || c.Height <= 1 {
		return nil, nil, fmt.Errorf("to images: cloud is %dx%d: %w", c.Width, c.Height, ErrDegenerateCloud)
	}
	if c.Width > math.MaxInt32 || c.Height > math.MaxInt32 {
		return nil, nil, fmt.Errorf("to images: cloud is %dx%d: %w", c.Width, c.Height, ErrDimensionOverflow)
	}
	if len(c.Points) != c.Size() {
		return nil, nil, fmt.Errorf("to images: %d points for %dx%d cloud: %w",
			len(c.Points), c.Width, c.Height, grid.ErrShapeMismatch)
	}

	rows := int(c.Height)
	cols := int(c.Width)
	pos = grid.NewGrid64(rows, cols)
	color = grid.NewGrid8(rows, cols)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := c.Points[y*cols+x]
			pos.Set(y, x, p.X, p.Y, p.Z)
			// Colour grid stores (b,g,r): channel 0 is blue.
			color.Set(y, x, p.B, p.G, p.R)
		}
	}
	return pos, color, nil
}

// FromImages rebuilds a structured cloud from a colour grid and a position
// grid, reading colour channels back in (b,g,r) order. The header is copied
// through unchanged. The result is always marked non-dense; positions are
// not inspected for NaN/Inf.
func FromImages(color *grid.Grid8, pos *grid.Grid64, hdr Header) (*Cloud, error) {
	if color.Rows != pos.Rows || color.Cols != pos.Cols {
		return nil, fmt.Errorf("from images: colour %dx%d vs position %dx%d: %w",
			color.Rows, color.Cols, pos.Rows, pos.Cols, grid.ErrShapeMismatch)
	}

	rows := color.Rows
	cols := color.Cols
	points := make([]Point, 0, rows*cols)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			px, py, pz := pos.At(y, x)
			b, g, r := color.At(y, x)
			points = append(points, Point{X: px, Y: py, Z: pz, R: r, G: g, B: b})
		}
	}

	return &Cloud{
		Header:  hdr,
		Points:  points,
		Width:   uint32(cols),
		Height:  uint32(rows),
		IsDense: false,
	}, nil
}
