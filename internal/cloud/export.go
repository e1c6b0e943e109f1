package cloud

import (
	"bufio"
	"fmt"
	"io"
)

// ExportASC writes the cloud's points in CloudCompare-compatible .asc
// format, one "X Y Z R G B" row per point in row-major order.
func ExportASC(w io.Writer, c *Cloud) error {
	if len(c.Points) == 0 {
		return fmt.Errorf("no points to export")
	}

	bw := bufio.NewWriter(w)
	// Write header
	fmt.Fprintf(bw, "# Exported points\n")
	fmt.Fprintf(bw, "# Format: X Y Z R G B\n")

	for _, p := range c.Points {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f %.6f %d %d %d\n", p.X, p.Y, p.Z, p.R, p.G, p.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}
