package cloud

import "errors"

var (
	// ErrDegenerateCloud reports a cloud whose width or height is <= 1,
	// i.e. an unorganised cloud that has no image layout to convert to.
	ErrDegenerateCloud = errors.New("degenerate point cloud")

	// ErrDimensionOverflow reports cloud dimensions too large for the
	// signed 32-bit indexing used on the image side.
	ErrDimensionOverflow = errors.New("cloud dimensions overflow int32")
)

// Point is a single cloud return: Cartesian position plus an 8-bit colour.
// Colour is kept as three explicit bytes; the packed single-field encoding
// exists only at the PCD boundary where the file format requires it.
type Point struct {
	X, Y, Z float64
	R, G, B uint8
}

// Header carries acquisition metadata through conversions unchanged.
// It mirrors the usual sensor-frame header triple: sequence number,
// acquisition time and the coordinate frame the positions are expressed in.
type Header struct {
	Seq     uint32
	Stamp   int64 // unix nanos
	FrameID string
}

// Cloud is a structured point cloud: Points holds Height rows of Width
// points in row-major order, so Points[y*Width+x] is the point at pixel
// (x,y). Invariant: len(Points) == Width*Height.
type Cloud struct {
	Header  Header
	Points  []Point
	Width   uint32
	Height  uint32
	IsDense bool
}

// At returns the point at grid coordinate (x,y).
func (c *Cloud) At(x, y int) Point {
	return c.Points[y*int(c.Width)+x]
}

// Size returns the total point count implied by the cloud's dimensions.
func (c *Cloud) Size() int {
	return int(c.Width) * int(c.Height)
}
