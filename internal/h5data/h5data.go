// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package h5data reads benchmark timings from the HDF5 file produced by the
// DFT benchmark.
package h5data

import (
	"fmt"

	"go.uber.org/multierr"
	"gonum.org/v1/hdf5"

	"github.com/petenewcomb/dftscaling/internal/cerr"
	"github.com/petenewcomb/dftscaling/internal/measure"
)

const ErrMissingDataset = cerr.Error("missing dataset")
const ErrUnsupportedType = cerr.Error("unsupported dataset type")

// Dataset names written by the benchmark.
const (
	SizesName     = "sizes"
	NaiveName     = "naive"
	EfficientName = "efficient"
	TargetName    = "target"
)

// File is an HDF5 file opened for reading.
type File struct {
	h5   *hdf5.File
	path string
}

// Open opens the HDF5 file at path read-only. The caller must Close it.
func Open(path string) (*File, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{h5: f, path: path}, nil
}

func (f *File) Close() error {
	return f.h5.Close()
}

// Path returns the path f was opened from.
func (f *File) Path() string {
	return f.path
}

// Read returns the named dataset converted to float64 and flattened in
// row-major order, along with its dimensions.
func (f *File) Read(name string) (values []float64, dims []uint, err error) {
	if !f.h5.LinkExists(name) {
		return nil, nil, ErrMissingDataset.Wrapf("%q in %s", name, f.path)
	}
	ds, err := f.h5.OpenDataset(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset %q: %w", name, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(ds))

	space := ds.Space()
	defer multierr.AppendInvoke(&err, multierr.Close(space))
	dims, _, err = space.SimpleExtentDims()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	n := space.SimpleExtentNPoints()

	dtype, err := ds.Datatype()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(dtype))

	values, err = readAs(ds, dtype, n)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset %q: %w", name, err)
	}
	return values, dims, nil
}

// readAs reads n elements using a buffer that matches the stored element type,
// then widens them to float64.
func readAs(ds *hdf5.Dataset, dtype *hdf5.Datatype, n int) ([]float64, error) {
	switch class, size := dtype.Class(), dtype.Size(); {
	case class == hdf5.T_INTEGER && size == 4:
		buf := make([]int32, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		return widen(buf), nil
	case class == hdf5.T_INTEGER && size == 8:
		buf := make([]int64, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		return widen(buf), nil
	case class == hdf5.T_FLOAT && size == 4:
		buf := make([]float32, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		return widen(buf), nil
	case class == hdf5.T_FLOAT && size == 8:
		buf := make([]float64, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		return buf, nil
	default:
		return nil, ErrUnsupportedType.Wrapf("class %v, %d bytes", class, size)
	}
}

func widen[T int32 | int64 | float32](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

// Measurements reads the four benchmark datasets from f.
func (f *File) Measurements() (*measure.Measurements, error) {
	sizes, err := f.readRank(SizesName, 1)
	if err != nil {
		return nil, err
	}
	naive, err := f.readTimings(NaiveName)
	if err != nil {
		return nil, err
	}
	efficient, err := f.readTimings(EfficientName)
	if err != nil {
		return nil, err
	}
	target, err := f.readRank(TargetName, 1)
	if err != nil {
		return nil, err
	}
	return measure.New(sizes, naive, efficient, target)
}

func (f *File) readRank(name string, rank int) ([]float64, error) {
	values, dims, err := f.Read(name)
	if err != nil {
		return nil, err
	}
	if len(dims) != rank {
		return nil, measure.ErrShapeMismatch.Wrapf("%s has rank %d, want %d", name, len(dims), rank)
	}
	return values, nil
}

func (f *File) readTimings(name string) ([]float64, error) {
	values, dims, err := f.Read(name)
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 || dims[1] != 2 {
		return nil, measure.ErrShapeMismatch.Wrapf("%s has shape %v, want Nx2", name, dims)
	}
	return values, nil
}

// Load opens path, reads its measurements, and closes it again.
func Load(path string) (m *measure.Measurements, err error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return f.Measurements()
}
