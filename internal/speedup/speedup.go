// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package speedup derives speed-up series from benchmark timings.
//
// Every series has the form reference/measured, computed element-wise with no
// guarding: a measured time of zero yields +Inf (or NaN if the reference is
// also zero) and is passed through as is.
package speedup

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/petenewcomb/dftscaling/internal/measure"
)

// Series holds the six speed-up sequences of a scaling chart, each with one
// entry per measurement run.
type Series struct {
	// Reference is sum(target) / (compress+decompress).
	TotalNaive     []float64
	TotalEfficient []float64

	// Reference is the target time of the same phase.
	CompressNaive       []float64
	DecompressNaive     []float64
	CompressEfficient   []float64
	DecompressEfficient []float64
}

// Len returns the number of runs covered by s.
func (s *Series) Len() int {
	return len(s.TotalNaive)
}

// Totals returns the row sums of m, i.e. the total time of each run.
func Totals(m mat.Matrix) []float64 {
	r, _ := m.Dims()
	totals := make([]float64, r)
	for i := range totals {
		totals[i] = floats.Sum(mat.Row(nil, i, m))
	}
	return totals
}

// Ratio returns reference/measured[i] for every i.
func Ratio(reference float64, measured []float64) []float64 {
	out := make([]float64, len(measured))
	for i, v := range measured {
		out[i] = reference / v
	}
	return out
}

// TargetSum returns the combined reference time of both phases.
func TargetSum(m *measure.Measurements) float64 {
	return floats.Sum(m.Target)
}

// Compute derives all six series from m. It fails with
// measure.ErrShapeMismatch if the fields of m disagree on the number of runs.
func Compute(m *measure.Measurements) (*Series, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	total := TargetSum(m)
	compress := m.Target[measure.Compress]
	decompress := m.Target[measure.Decompress]
	return &Series{
		TotalNaive:          Ratio(total, Totals(m.Naive)),
		TotalEfficient:      Ratio(total, Totals(m.Efficient)),
		CompressNaive:       Ratio(compress, mat.Col(nil, measure.Compress, m.Naive)),
		DecompressNaive:     Ratio(decompress, mat.Col(nil, measure.Decompress, m.Naive)),
		CompressEfficient:   Ratio(compress, mat.Col(nil, measure.Compress, m.Efficient)),
		DecompressEfficient: Ratio(decompress, mat.Col(nil, measure.Decompress, m.Efficient)),
	}, nil
}
