package grid

import "errors"

// Channels is the per-cell channel count of both grid containers.
const Channels = 3

// ErrShapeMismatch reports two grids (or a grid and a cloud) whose
// dimensions do not agree.
var ErrShapeMismatch = errors.New("grid shape mismatch")

// Grid64 is a rows×cols grid with three float64 channels per cell, stored
// row-major in a flat slice: cell (y,x) occupies Data[(y*Cols+x)*3 : +3].
// The conversion layer uses it to carry per-pixel (x,y,z) positions.
type Grid64 struct {
	Rows, Cols int
	Data       []float64
}

// NewGrid64 allocates a zeroed rows×cols position grid.
func NewGrid64(rows, cols int) *Grid64 {
	return &Grid64{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols*Channels),
	}
}

// At returns the three channel values of cell (y,x).
func (g *Grid64) At(y, x int) (c0, c1, c2 float64) {
	i := (y*g.Cols + x) * Channels
	return g.Data[i], g.Data[i+1], g.Data[i+2]
}

// Set stores the three channel values of cell (y,x).
func (g *Grid64) Set(y, x int, c0, c1, c2 float64) {
	i := (y*g.Cols + x) * Channels
	g.Data[i], g.Data[i+1], g.Data[i+2] = c0, c1, c2
}

// Type returns the grid's format code (64FC3).
func (g *Grid64) Type() int { return MakeType(Depth64F, Channels) }

// Grid8 is a rows×cols grid with three uint8 channels per cell, stored
// row-major in a flat slice. The conversion layer uses it for colour, with
// channels physically ordered (b,g,r): channel 0 is blue. That ordering is
// part of the contract at both conversion boundaries, not an accident.
type Grid8 struct {
	Rows, Cols int
	Data       []uint8
}

// NewGrid8 allocates a zeroed rows×cols colour grid.
func NewGrid8(rows, cols int) *Grid8 {
	return &Grid8{
		Rows: rows,
		Cols: cols,
		Data: make([]uint8, rows*cols*Channels),
	}
}

// At returns the three channel values of cell (y,x) in storage order.
func (g *Grid8) At(y, x int) (c0, c1, c2 uint8) {
	i := (y*g.Cols + x) * Channels
	return g.Data[i], g.Data[i+1], g.Data[i+2]
}

// Set stores the three channel values of cell (y,x) in storage order.
func (g *Grid8) Set(y, x int, c0, c1, c2 uint8) {
	i := (y*g.Cols + x) * Channels
	g.Data[i], g.Data[i+1], g.Data[i+2] = c0, c1, c2
}

// Type returns the grid's format code (8UC3).
func (g *Grid8) Type() int { return MakeType(Depth8U, Channels) }
