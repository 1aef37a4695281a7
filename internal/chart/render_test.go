// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/petenewcomb/dftscaling/internal/chart"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func composeExample(t *testing.T) *chart.Chart {
	c, err := chart.Compose([]float64{1, 2, 4}, exampleSeries(), chart.DefaultStyle)
	require.NoError(t, err)
	return c
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]chart.Format{
		"scalling.pdf":  chart.PDF,
		"out/chart.SVG": chart.SVG,
		"a.eps":         chart.EPS,
		"a.png":         chart.PNG,
		"a.jpg":         chart.JPEG,
		"a.jpeg":        chart.JPEG,
		"a.tif":         chart.TIFF,
		"a.tiff":        chart.TIFF,
	} {
		got, err := chart.FormatOf(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	_, err := chart.FormatOf("chart")
	require.ErrorIs(t, err, chart.ErrUnknownFormat)
	_, err = chart.FormatOf("chart.gif")
	require.ErrorIs(t, err, chart.ErrUnknownFormat)
}

func TestRenderPDF(t *testing.T) {
	chk := require.New(t)
	var buf bytes.Buffer
	chk.NoError(chart.Render(&buf, composeExample(t).Plot, chart.PDF, chart.DefaultPage))
	chk.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderSVG(t *testing.T) {
	chk := require.New(t)
	var buf bytes.Buffer
	chk.NoError(chart.Render(&buf, composeExample(t).Plot, chart.SVG, chart.DefaultPage))
	chk.Contains(buf.String(), "<svg")
	chk.Contains(buf.String(), `width="576pt" height="432pt"`)
}

func TestRenderPNGUsesDPI(t *testing.T) {
	chk := require.New(t)
	var buf bytes.Buffer
	page := chart.Page{Width: 8 * vg.Inch, Height: 6 * vg.Inch, DPI: 50}
	chk.NoError(chart.Render(&buf, composeExample(t).Plot, chart.PNG, page))

	cfg, err := png.DecodeConfig(&buf)
	chk.NoError(err)
	chk.Equal(400, cfg.Width)
	chk.Equal(300, cfg.Height)
}

func TestRenderInvalidPage(t *testing.T) {
	var buf bytes.Buffer
	err := chart.Render(&buf, composeExample(t).Plot, chart.PDF, chart.Page{Width: vg.Inch, Height: vg.Inch})
	require.ErrorIs(t, err, chart.ErrInvalidPage)
	require.Zero(t, buf.Len())
}

func TestSave(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "scalling.pdf")
	chk.NoError(os.WriteFile(path, []byte("stale"), 0o644))

	chk.NoError(chart.Save(path, composeExample(t).Plot, chart.DefaultPage))

	data, err := os.ReadFile(path)
	chk.NoError(err)
	chk.True(bytes.HasPrefix(data, []byte("%PDF-")))

	entries, err := os.ReadDir(dir)
	chk.NoError(err)
	chk.Len(entries, 1)
}

func TestSaveFailureLeavesNothing(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()

	err := chart.Save(filepath.Join(dir, "scalling.pdf"), composeExample(t).Plot, chart.Page{})
	chk.ErrorIs(err, chart.ErrInvalidPage)

	err = chart.Save(filepath.Join(dir, "scalling.gif"), composeExample(t).Plot, chart.DefaultPage)
	chk.ErrorIs(err, chart.ErrUnknownFormat)

	err = chart.Save(filepath.Join(dir, "missing", "scalling.pdf"), composeExample(t).Plot, chart.DefaultPage)
	chk.Error(err)

	entries, err := os.ReadDir(dir)
	chk.NoError(err)
	chk.Empty(entries)
}
