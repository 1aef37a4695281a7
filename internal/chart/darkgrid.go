// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	darkGridFace = color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff}
	darkGridLine = draw.LineStyle{Color: color.White, Width: vg.Points(1)}
)

// backdrop fills the whole data area with a single color.
type backdrop struct {
	Color color.Color
}

var _ plot.Plotter = backdrop{}

func (b backdrop) Plot(c draw.Canvas, _ *plot.Plot) {
	c.FillPolygon(b.Color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// addDarkGrid must run before any series is added so that the series are
// drawn on top.
func addDarkGrid(p *plot.Plot) {
	grid := plotter.NewGrid()
	grid.Vertical = darkGridLine
	grid.Horizontal = darkGridLine
	p.Add(backdrop{Color: darkGridFace}, grid)

	p.X.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0
	p.X.Tick.LineStyle.Width = 0
	p.Y.Tick.LineStyle.Width = 0
}
