package cloud

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/cloudgrid/internal/grid"
)

// testCloud builds a width×height cloud with distinct positions and colours
// per point.
func testCloud(width, height int) *Cloud {
	points := make([]Point, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			points = append(points, Point{
				X: float64(x) + 0.25,
				Y: float64(y) - 0.5,
				Z: float64(i) * 0.125,
				R: uint8(3 * i),
				G: uint8(3*i + 1),
				B: uint8(3*i + 2),
			})
		}
	}
	return &Cloud{
		Header: Header{Seq: 7, Stamp: 1700000000000000000, FrameID: "sensor"},
		Points: points,
		Width:  uint32(width),
		Height: uint32(height),
	}
}

func TestToImagesShape(t *testing.T) {
	c := testCloud(5, 3)
	pos, color, err := ToImages(c)
	if err != nil {
		t.Fatalf("ToImages returned error: %v", err)
	}
	if pos.Rows != 3 || pos.Cols != 5 {
		t.Errorf("position grid is %dx%d, want 3x5", pos.Rows, pos.Cols)
	}
	if color.Rows != 3 || color.Cols != 5 {
		t.Errorf("colour grid is %dx%d, want 3x5", color.Rows, color.Cols)
	}
}

func TestToImagesChannelOrder(t *testing.T) {
	c := testCloud(2, 2)
	c.Points[0] = Point{R: 10, G: 20, B: 30}

	_, color, err := ToImages(c)
	if err != nil {
		t.Fatalf("ToImages returned error: %v", err)
	}
	b, g, r := color.At(0, 0)
	if b != 30 || g != 20 || r != 10 {
		t.Errorf("pixel (0,0) = (%d,%d,%d), want (30,20,10) in b,g,r order", b, g, r)
	}
}

func TestToImagesEndToEnd(t *testing.T) {
	c := &Cloud{
		Points: []Point{
			{X: 0, Y: 0, Z: 0, R: 1, G: 2, B: 3},
			{X: 1, Y: 0, Z: 0, R: 4, G: 5, B: 6},
			{X: 0, Y: 1, Z: 0, R: 7, G: 8, B: 9},
			{X: 1, Y: 1, Z: 0, R: 10, G: 11, B: 12},
		},
		Width:  2,
		Height: 2,
	}

	pos, color, err := ToImages(c)
	if err != nil {
		t.Fatalf("ToImages returned error: %v", err)
	}

	wantPos := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	wantCol := [][3]uint8{{3, 2, 1}, {6, 5, 4}, {9, 8, 7}, {12, 11, 10}}
	for i := 0; i < 4; i++ {
		y, x := i/2, i%2
		px, py, pz := pos.At(y, x)
		if [3]float64{px, py, pz} != wantPos[i] {
			t.Errorf("position (%d,%d) = (%v,%v,%v), want %v", y, x, px, py, pz, wantPos[i])
		}
		b, g, r := color.At(y, x)
		if [3]uint8{b, g, r} != wantCol[i] {
			t.Errorf("colour (%d,%d) = (%d,%d,%d), want %v", y, x, b, g, r, wantCol[i])
		}
	}
}

func TestToImagesDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
	}{
		{"1x1", 1, 1},
		{"1xN", 1, 8},
		{"Nx1", 8, 1},
		{"zero width", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cloud{
				Points: make([]Point, int(tt.width)*int(tt.height)),
				Width:  tt.width,
				Height: tt.height,
			}
			_, _, err := ToImages(c)
			if !errors.Is(err, ErrDegenerateCloud) {
				t.Errorf("ToImages error = %v, want ErrDegenerateCloud", err)
			}
		})
	}
}

func TestToImagesDimensionOverflow(t *testing.T) {
	c := &Cloud{Width: math.MaxInt32 + 1, Height: 2}
	_, _, err := ToImages(c)
	if !errors.Is(err, ErrDimensionOverflow) {
		t.Errorf("ToImages error = %v, want ErrDimensionOverflow", err)
	}
}

func TestToImagesPointCountMismatch(t *testing.T) {
	c := &Cloud{
		Points: make([]Point, 5), // 2x3 cloud needs 6
		Width:  2,
		Height: 3,
	}
	_, _, err := ToImages(c)
	if !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("ToImages error = %v, want ErrShapeMismatch", err)
	}
}

func TestFromImagesShapeMismatch(t *testing.T) {
	color := grid.NewGrid8(10, 10)
	pos := grid.NewGrid64(10, 9)
	_, err := FromImages(color, pos, Header{})
	if !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("FromImages error = %v, want ErrShapeMismatch", err)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := testCloud(7, 4)

	pos, color, err := ToImages(orig)
	if err != nil {
		t.Fatalf("ToImages returned error: %v", err)
	}
	back, err := FromImages(color, pos, orig.Header)
	if err != nil {
		t.Fatalf("FromImages returned error: %v", err)
	}

	// Reconstructed clouds are always marked non-dense; compare the rest
	// against the original.
	if back.IsDense {
		t.Error("reconstructed cloud marked dense")
	}
	want := *orig
	want.IsDense = false
	if diff := cmp.Diff(&want, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImagesHeaderPassThrough(t *testing.T) {
	hdr := Header{Seq: 42, Stamp: 99, FrameID: "base_link"}
	c, err := FromImages(grid.NewGrid8(2, 2), grid.NewGrid64(2, 2), hdr)
	if err != nil {
		t.Fatalf("FromImages returned error: %v", err)
	}
	if c.Header != hdr {
		t.Errorf("header = %+v, want %+v", c.Header, hdr)
	}
	if c.Width != 2 || c.Height != 2 {
		t.Errorf("cloud is %dx%d, want 2x2", c.Width, c.Height)
	}
}
