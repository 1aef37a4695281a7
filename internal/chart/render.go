// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/petenewcomb/dftscaling/internal/cerr"
)

const ErrUnknownFormat = cerr.Error("unknown output format")
const ErrInvalidPage = cerr.Error("invalid page")

// Format is an output file format.
type Format string

const (
	PDF  Format = "pdf"
	SVG  Format = "svg"
	EPS  Format = "eps"
	PNG  Format = "png"
	JPEG Format = "jpeg"
	TIFF Format = "tiff"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "pdf":
		return PDF, nil
	case "svg":
		return SVG, nil
	case "eps":
		return EPS, nil
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", ErrUnknownFormat.Wrapf("%q", path)
}

// Page is the size and resolution of a rendered chart. DPI only affects the
// raster formats; the vector formats use their own nominal resolution.
type Page struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

var DefaultPage = Page{
	Width:  8 * vg.Inch,
	Height: 6 * vg.Inch,
	DPI:    300,
}

func (pg Page) validate() error {
	if pg.Width <= 0 || pg.Height <= 0 {
		return ErrInvalidPage.Wrapf("size %vx%v", pg.Width, pg.Height)
	}
	if pg.DPI <= 0 {
		return ErrInvalidPage.Wrapf("%d dpi", pg.DPI)
	}
	return nil
}

func newCanvas(f Format, pg Page) (vg.CanvasWriterTo, error) {
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(pg.Width, pg.Height), vgimg.UseDPI(pg.DPI))
	}
	switch f {
	case PDF:
		return vgpdf.New(pg.Width, pg.Height), nil
	case SVG:
		return vgsvg.New(pg.Width, pg.Height), nil
	case EPS:
		return vgeps.New(pg.Width, pg.Height), nil
	case PNG:
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case JPEG:
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case TIFF:
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	}
	return nil, ErrUnknownFormat.Wrapf("%q", string(f))
}

// Render draws p onto a page of the given format and writes it to w.
func Render(w io.Writer, p *plot.Plot, f Format, pg Page) error {
	if err := pg.validate(); err != nil {
		return err
	}
	c, err := newCanvas(f, pg)
	if err != nil {
		return err
	}
	p.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", f, err)
	}
	return nil
}

// Save renders p to path in the format implied by its extension, replacing any
// existing file. The chart is first written to a temporary file in the same
// directory so that path is only ever created with complete content.
func Save(path string, p *plot.Plot, pg Page) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Render(tmp, p, f, pg); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
