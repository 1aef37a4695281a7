// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package measure holds the benchmark timings that a scaling chart is drawn
// from.
package measure

import (
	"gonum.org/v1/gonum/mat"

	"github.com/petenewcomb/dftscaling/internal/cerr"
)

const ErrShapeMismatch = cerr.Error("shape mismatch")
const ErrNoRuns = cerr.Error("no measurement runs")

// Column indexes of a timing matrix.
const (
	Compress   = 0
	Decompress = 1
)

// Measurements are the timings for one benchmark session. Naive and Efficient
// have one row per entry in Sizes and one column per phase (Compress,
// Decompress). Target holds the single-threaded reference time of each phase.
type Measurements struct {
	Sizes     []float64
	Naive     *mat.Dense
	Efficient *mat.Dense
	Target    []float64
}

// New builds Measurements from row-major timing data with two columns per
// row.
func New(sizes []float64, naive, efficient []float64, target []float64) (*Measurements, error) {
	n, err := dense("naive", naive)
	if err != nil {
		return nil, err
	}
	e, err := dense("efficient", efficient)
	if err != nil {
		return nil, err
	}
	m := &Measurements{
		Sizes:     sizes,
		Naive:     n,
		Efficient: e,
		Target:    target,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func dense(name string, data []float64) (*mat.Dense, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%2 != 0 {
		return nil, ErrShapeMismatch.Wrapf("%s has %d values, want a multiple of 2", name, len(data))
	}
	return mat.NewDense(len(data)/2, 2, data), nil
}

// Runs returns the number of measurement runs.
func (m *Measurements) Runs() int {
	return len(m.Sizes)
}

// Validate reports ErrShapeMismatch unless both timing matrices are Runs()×2
// and Target has one entry per phase.
func (m *Measurements) Validate() error {
	n := m.Runs()
	if n == 0 {
		return ErrNoRuns
	}
	if err := checkMatrix("naive", m.Naive, n); err != nil {
		return err
	}
	if err := checkMatrix("efficient", m.Efficient, n); err != nil {
		return err
	}
	if len(m.Target) != 2 {
		return ErrShapeMismatch.Wrapf("target has %d entries, want 2", len(m.Target))
	}
	return nil
}

func checkMatrix(name string, m *mat.Dense, runs int) error {
	if m == nil {
		return ErrShapeMismatch.Wrapf("%s is missing", name)
	}
	r, c := m.Dims()
	if r != runs || c != 2 {
		return ErrShapeMismatch.Wrapf("%s is %dx%d, want %dx2", name, r, c, runs)
	}
	return nil
}
