// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package scaling

import (
	"github.com/petenewcomb/dftscaling/internal/chart"
	"github.com/petenewcomb/dftscaling/internal/h5data"
	"github.com/petenewcomb/dftscaling/internal/measure"
)

// Errors returned by Run, for use with errors.Is.
const (
	ErrMissingDataset  = h5data.ErrMissingDataset
	ErrUnsupportedType = h5data.ErrUnsupportedType
	ErrShapeMismatch   = measure.ErrShapeMismatch
	ErrNoRuns          = measure.ErrNoRuns
	ErrUnknownFormat   = chart.ErrUnknownFormat
	ErrInvalidPage     = chart.ErrInvalidPage
)
