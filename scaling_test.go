// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package scaling_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/petenewcomb/dftscaling"
	"github.com/petenewcomb/dftscaling/internal/h5data/h5datatest"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	cfg      scaling.Config
	stdout   *bytes.Buffer
	recorder *tracetest.SpanRecorder
}

func newFixture(t *testing.T, datasets ...h5datatest.Dataset) *fixture {
	dir := t.TempDir()
	input := filepath.Join(dir, "dft.h5")
	if datasets != nil {
		h5datatest.Write(t, input, datasets...)
	}

	fx := &fixture{
		stdout:   new(bytes.Buffer),
		recorder: tracetest.NewSpanRecorder(),
	}
	fx.cfg = scaling.DefaultConfig
	fx.cfg.InputPath = input
	fx.cfg.OutputPath = filepath.Join(dir, "scalling.pdf")
	fx.cfg.Stdout = fx.stdout
	fx.cfg.Logger = zaptest.NewLogger(t)
	fx.cfg.TracerProvider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(fx.recorder))
	return fx
}

func (fx *fixture) spanNames() []string {
	var names []string
	for _, s := range fx.recorder.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func (fx *fixture) rootStatus() codes.Code {
	ended := fx.recorder.Ended()
	return ended[len(ended)-1].Status().Code
}

func requireNoOutput(t *testing.T, fx *fixture) {
	_, err := os.Stat(fx.cfg.OutputPath)
	require.True(t, os.IsNotExist(err), "output should not exist")
}

func TestRun(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.Example()...)

	chk.NoError(scaling.Run(context.Background(), fx.cfg))

	chk.Equal("15\n", fx.stdout.String())
	data, err := os.ReadFile(fx.cfg.OutputPath)
	chk.NoError(err)
	chk.True(bytes.HasPrefix(data, []byte("%PDF-")))

	chk.Equal([]string{"load", "aggregate", "compose", "render", "scaling"}, fx.spanNames())
	chk.Equal(codes.Unset, fx.rootStatus())
}

func TestRunZeroTiming(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.DFT(
		[]int32{1, 2, 4},
		[][2]float32{{20, 10}, {0, 5}, {5, 2.5}},
		[][2]float32{{10, 5}, {5, 2.5}, {0, 0}},
		[2]float32{10, 5},
	)...)

	chk.NoError(scaling.Run(context.Background(), fx.cfg))
	_, err := os.Stat(fx.cfg.OutputPath)
	chk.NoError(err)
}

func TestRunMissingInput(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t)

	chk.Error(scaling.Run(context.Background(), fx.cfg))
	requireNoOutput(t, fx)
	chk.Empty(fx.stdout.String())
	chk.Equal([]string{"scaling"}, fx.spanNames())
	chk.Equal(codes.Error, fx.rootStatus())
}

func TestRunMissingDataset(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.Without(h5datatest.Example(), "target")...)

	err := scaling.Run(context.Background(), fx.cfg)
	chk.ErrorIs(err, scaling.ErrMissingDataset)
	requireNoOutput(t, fx)
	chk.Equal([]string{"load", "scaling"}, fx.spanNames())
	chk.Equal(codes.Error, fx.recorder.Ended()[0].Status().Code)
}

func TestRunShapeMismatch(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.DFT(
		[]int32{1, 2},
		[][2]float32{{20, 10}, {10, 5}, {5, 2.5}},
		[][2]float32{{10, 5}, {5, 2.5}, {2.5, 1.25}},
		[2]float32{10, 5},
	)...)

	err := scaling.Run(context.Background(), fx.cfg)
	chk.ErrorIs(err, scaling.ErrShapeMismatch)
	requireNoOutput(t, fx)
}

func TestRunUnwritableOutput(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.Example()...)
	fx.cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "scalling.pdf")

	chk.Error(scaling.Run(context.Background(), fx.cfg))
	requireNoOutput(t, fx)
	chk.Equal("15\n", fx.stdout.String())
}

func TestRunCanceled(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.Example()...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chk.ErrorIs(scaling.Run(ctx, fx.cfg), context.Canceled)
	requireNoOutput(t, fx)
}

func TestRunOtherFormat(t *testing.T) {
	chk := require.New(t)
	fx := newFixture(t, h5datatest.Example()...)
	fx.cfg.OutputPath = filepath.Join(filepath.Dir(fx.cfg.OutputPath), "scalling.svg")

	chk.NoError(scaling.Run(context.Background(), fx.cfg))
	data, err := os.ReadFile(fx.cfg.OutputPath)
	chk.NoError(err)
	chk.Contains(string(data), "<svg")
}
