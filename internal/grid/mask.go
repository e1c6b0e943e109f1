package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ApplyMask multiplies input by mask elementwise and returns the product as
// a newly allocated grid. Typical masks are all-ones/all-zeros selection
// grids produced upstream of annotation. Fails with ErrShapeMismatch if the
// two grids disagree on dimensions; neither input is modified.
func ApplyMask(input, mask *Grid64) (*Grid64, error) {
	if input.Rows != mask.Rows || input.Cols != mask.Cols {
		return nil, fmt.Errorf("apply mask: input %dx%d vs mask %dx%d: %w",
			input.Rows, input.Cols, mask.Rows, mask.Cols, ErrShapeMismatch)
	}

	out := NewGrid64(input.Rows, input.Cols)
	if input.Rows == 0 || input.Cols == 0 {
		return out, nil
	}

	// View the flat channel data as rows×(cols·3) matrices so gonum can do
	// the elementwise product in one call. The product matrix shares out's
	// backing slice, so no copy back is needed.
	a := mat.NewDense(input.Rows, input.Cols*Channels, input.Data)
	b := mat.NewDense(mask.Rows, mask.Cols*Channels, mask.Data)
	prod := mat.NewDense(out.Rows, out.Cols*Channels, out.Data)
	prod.MulElem(a, b)

	return out, nil
}
