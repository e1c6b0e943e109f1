// Package visualiser renders position and colour grids for inspection:
// per-channel heatmaps via gonum/plot and stdlib PNG images of colour
// grids.
package visualiser

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/cloudgrid/internal/grid"
)

// channelGrid adapts one channel of a Grid64 to plotter.GridXYZ.
// Column/row indices double as plot coordinates so a cell maps to one
// pixel-sized heatmap tile.
type channelGrid struct {
	g  *grid.Grid64
	ch int
}

func (c channelGrid) Dims() (cols, rows int) { return c.g.Cols, c.g.Rows }
func (c channelGrid) X(col int) float64      { return float64(col) }
func (c channelGrid) Y(row int) float64      { return float64(row) }

func (c channelGrid) Z(col, row int) float64 {
	c0, c1, c2 := c.g.At(row, col)
	switch c.ch {
	case 0:
		return c0
	case 1:
		return c1
	default:
		return c2
	}
}

// RenderHeatMap plots the given channel (0..2) of a position grid as a PNG
// heatmap and writes it to w.
func RenderHeatMap(w io.Writer, g *grid.Grid64, channel int, title string) error {
	if channel < 0 || channel >= grid.Channels {
		return fmt.Errorf("render heatmap: channel %d out of range", channel)
	}
	if g.Rows == 0 || g.Cols == 0 {
		return fmt.Errorf("render heatmap: empty grid")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	hm := plotter.NewHeatMap(channelGrid{g: g, ch: channel}, palette.Heat(12, 1))
	p.Add(hm)

	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return nil
}
