// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package scaling

import (
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/petenewcomb/dftscaling/internal/chart"
)

var DefaultConfig = Config{
	InputPath:  "dft.h5",
	OutputPath: "scalling.pdf",
	Page:       chart.DefaultPage,
	Style:      chart.DefaultStyle,
}

type Config struct {
	InputPath  string
	OutputPath string
	Page       chart.Page
	Style      chart.Style

	// Stdout receives the combined target time before the chart is drawn.
	// Defaults to os.Stdout.
	Stdout io.Writer

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

func (c *Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Config) tracerProvider() trace.TracerProvider {
	if c.TracerProvider == nil {
		return otel.GetTracerProvider()
	}
	return c.TracerProvider
}
