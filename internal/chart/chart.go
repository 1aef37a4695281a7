// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chart draws speed-up series against thread counts and writes the
// result to a file.
package chart

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/petenewcomb/dftscaling/internal/measure"
	"github.com/petenewcomb/dftscaling/internal/speedup"
)

// Style controls the look of a composed chart.
type Style struct {
	XAxisLabel string
	YAxisLabel string
	LineWidth  vg.Length

	// DarkGrid draws a tinted data area with white grid lines behind the
	// series.
	DarkGrid bool
}

var DefaultStyle = Style{
	XAxisLabel: "number of threads",
	YAxisLabel: "speed-up",
	LineWidth:  vg.Points(1.5),
	DarkGrid:   true,
}

var (
	Black = color.RGBA{A: 255}
	Red   = color.RGBA{R: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}

	// Solid is used for the naive variant and Dotted for the efficient one.
	Solid  []vg.Length
	Dotted = []vg.Length{vg.Points(1.5), vg.Points(2.5)}
)

// Line is one legend entry of a chart together with the finite runs of its
// points.
type Line struct {
	Label    string
	Style    draw.LineStyle
	Segments []*plotter.Line
}

// Chart is a composed plot ready to be rendered.
type Chart struct {
	Plot  *plot.Plot
	Lines []Line
}

type seriesSpec struct {
	label  string
	color  color.Color
	dashes []vg.Length
	values func(*speedup.Series) []float64
}

// The efficient compress/decompress entries reuse the naive labels; only the
// dash pattern tells them apart.
var seriesSpecs = []seriesSpec{
	{"total naive", Black, Solid, func(s *speedup.Series) []float64 { return s.TotalNaive }},
	{"total efficient", Black, Dotted, func(s *speedup.Series) []float64 { return s.TotalEfficient }},
	{"compress naive", Red, Solid, func(s *speedup.Series) []float64 { return s.CompressNaive }},
	{"decompress naive", Blue, Solid, func(s *speedup.Series) []float64 { return s.DecompressNaive }},
	{"compress naive", Red, Dotted, func(s *speedup.Series) []float64 { return s.CompressEfficient }},
	{"decompress naive", Blue, Dotted, func(s *speedup.Series) []float64 { return s.DecompressEfficient }},
}

// Compose draws every series of s against sizes on a single set of axes.
// Points where either coordinate is not finite are left out, breaking the line
// at that run.
func Compose(sizes []float64, s *speedup.Series, style Style) (*Chart, error) {
	p := setupPlot(sizes, style)
	c := &Chart{Plot: p}

	for _, spec := range seriesSpecs {
		values := spec.values(s)
		if len(values) != len(sizes) {
			return nil, measure.ErrShapeMismatch.Wrapf("%q has %d points for %d sizes", spec.label, len(values), len(sizes))
		}

		line := Line{
			Label: spec.label,
			Style: draw.LineStyle{
				Color:  spec.color,
				Width:  style.LineWidth,
				Dashes: spec.dashes,
			},
		}
		for _, xys := range finiteRuns(sizes, values) {
			l, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			l.LineStyle = line.Style
			line.Segments = append(line.Segments, l)
			p.Add(l)
		}
		p.Legend.Add(line.Label, &plotter.Line{LineStyle: line.Style})
		c.Lines = append(c.Lines, line)
	}

	return c, nil
}

func setupPlot(sizes []float64, style Style) *plot.Plot {
	p := plot.New()

	p.X.Label.Text = style.XAxisLabel
	p.Y.Label.Text = style.YAxisLabel

	if ticks := sizeTicks(sizes); len(ticks) > 0 {
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter

	if style.DarkGrid {
		addDarkGrid(p)
	}

	return p
}

func sizeTicks(sizes []float64) []plot.Tick {
	var ticks []plot.Tick
	seen := make(map[float64]bool)
	for _, x := range sizes {
		if !isFinite(x) || seen[x] {
			continue
		}
		seen[x] = true
		ticks = append(ticks, plot.Tick{
			Value: x,
			Label: strconv.FormatFloat(x, 'g', -1, 64),
		})
	}
	return ticks
}

// finiteRuns splits the points into maximal runs of consecutive finite
// points.
func finiteRuns(xs, ys []float64) []plotter.XYs {
	var runs []plotter.XYs
	var cur plotter.XYs
	for i := range xs {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			cur = append(cur, plotter.XY{X: xs[i], Y: ys[i]})
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
