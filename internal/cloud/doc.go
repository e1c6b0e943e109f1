// Package cloud owns the structured point cloud container and its
// conversions to and from the paired position/colour image grids.
//
// A structured (organised) cloud is one whose points form a height×width
// grid matching an image's row/column layout; Points[y*Width+x] is the
// return at pixel (x,y). Conversions are pure single-pass transforms: no
// shared state, no partial output on failure.
package cloud
