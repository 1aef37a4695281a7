// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package h5datatest writes HDF5 fixtures for tests.
package h5datatest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/hdf5"
)

// Dataset describes one dataset to write. Data must be a []int32, []int64,
// []float32 or []float64 holding the product of Dims elements in row-major
// order.
type Dataset struct {
	Name string
	Dims []uint
	Data any
}

// DFT returns the datasets the way the benchmark stores them: native int
// thread counts and native float timings.
func DFT(sizes []int32, naive, efficient [][2]float32, target [2]float32) []Dataset {
	flatten := func(rows [][2]float32) []float32 {
		out := make([]float32, 0, 2*len(rows))
		for _, r := range rows {
			out = append(out, r[0], r[1])
		}
		return out
	}
	return []Dataset{
		{Name: "sizes", Dims: []uint{uint(len(sizes))}, Data: sizes},
		{Name: "naive", Dims: []uint{uint(len(naive)), 2}, Data: flatten(naive)},
		{Name: "efficient", Dims: []uint{uint(len(efficient)), 2}, Data: flatten(efficient)},
		{Name: "target", Dims: []uint{2}, Data: target[:]},
	}
}

// Example returns the three-run fixture used across the tests: thread counts
// 1, 2 and 4, with each doubling halving both phases.
func Example() []Dataset {
	return DFT(
		[]int32{1, 2, 4},
		[][2]float32{{20, 10}, {10, 5}, {5, 2.5}},
		[][2]float32{{10, 5}, {5, 2.5}, {2.5, 1.25}},
		[2]float32{10, 5},
	)
}

// Without returns datasets minus the one with the given name.
func Without(datasets []Dataset, name string) []Dataset {
	var out []Dataset
	for _, d := range datasets {
		if d.Name != name {
			out = append(out, d)
		}
	}
	return out
}

// Write creates (or truncates) an HDF5 file at path holding datasets.
func Write(t testing.TB, path string, datasets ...Dataset) {
	t.Helper()
	chk := require.New(t)

	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	chk.NoError(err)
	defer func() { chk.NoError(f.Close()) }()

	for _, d := range datasets {
		chk.NoError(write(f, d), d.Name)
	}
}

func write(f *hdf5.File, d Dataset) error {
	space, err := hdf5.CreateSimpleDataspace(d.Dims, nil)
	if err != nil {
		return err
	}
	defer space.Close()

	var dtype *hdf5.Datatype
	switch d.Data.(type) {
	case []int32:
		dtype = hdf5.T_NATIVE_INT32
	case []int64:
		dtype = hdf5.T_NATIVE_INT64
	case []float32:
		dtype = hdf5.T_NATIVE_FLOAT
	case []float64:
		dtype = hdf5.T_NATIVE_DOUBLE
	default:
		return fmt.Errorf("unsupported fixture data %T", d.Data)
	}

	ds, err := f.CreateDataset(d.Name, dtype, space)
	if err != nil {
		return err
	}
	defer ds.Close()

	switch v := d.Data.(type) {
	case []int32:
		return ds.Write(&v)
	case []int64:
		return ds.Write(&v)
	case []float32:
		return ds.Write(&v)
	case []float64:
		return ds.Write(&v)
	}
	return nil
}
