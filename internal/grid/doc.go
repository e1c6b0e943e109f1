// Package grid provides the 2D image-buffer containers used on the image
// side of point cloud conversions.
//
// Two concrete containers are provided: Grid64 (three float64 channels per
// cell, used for per-pixel positions) and Grid8 (three uint8 channels per
// cell, used for per-pixel colour in b,g,r order). Both store their cells
// in a flat row-major backing slice.
//
// Format codes follow the OpenCV convention: the element depth tag lives in
// the low three bits and the channel count (minus one) above it, so existing
// tooling that prints "8UC3"-style labels keeps working.
package grid
