// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package scaling turns the timings recorded by the DFT compression benchmark
// into a chart of speed-up versus thread count.
//
// The benchmark stores four datasets in an HDF5 file: the thread counts of
// each run ("sizes"), compress and decompress times of the naive and
// efficient parallel implementations at each thread count ("naive",
// "efficient"), and the single-threaded compress and decompress times that
// serve as the reference ("target"). Run reads them and derives six
// speed-up series: overall, compress-only, and decompress-only, for each
// implementation. It then draws them on one set of axes and saves the chart.
//
// Speed-ups are plain quotients. A zero timing produces an infinite speed-up,
// which shows up as a gap in the corresponding line rather than as an error.
package scaling

//go:generate go run ./internal/cmd/scaling
