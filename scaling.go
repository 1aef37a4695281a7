// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package scaling

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/petenewcomb/dftscaling/internal/chart"
	"github.com/petenewcomb/dftscaling/internal/h5data"
	"github.com/petenewcomb/dftscaling/internal/measure"
	"github.com/petenewcomb/dftscaling/internal/speedup"
)

const instrumentationName = "github.com/petenewcomb/dftscaling"

// Run reads the benchmark file named by cfg.InputPath and writes the scaling
// chart to cfg.OutputPath. The input file stays open until the chart has been
// written and is closed on every return path. The output file is only created
// if every preceding step succeeds.
func Run(ctx context.Context, cfg Config) (err error) {
	logger := cfg.logger()
	tracer := cfg.tracerProvider().Tracer(instrumentationName)

	ctx, span := tracer.Start(ctx, "scaling", trace.WithAttributes(
		attribute.String("input", cfg.InputPath),
		attribute.String("output", cfg.OutputPath),
	))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	f, err := h5data.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	m, err := runStage(ctx, tracer, logger, "load", func(ctx context.Context) (*measure.Measurements, error) {
		return f.Measurements()
	})
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("runs", m.Runs()))

	s, err := runStage(ctx, tracer, logger, "aggregate", func(ctx context.Context) (*speedup.Series, error) {
		return speedup.Compute(m)
	})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cfg.stdout(), strconv.FormatFloat(speedup.TargetSum(m), 'g', -1, 64)); err != nil {
		return err
	}
	logReport(logger, m, s)

	c, err := runStage(ctx, tracer, logger, "compose", func(ctx context.Context) (*chart.Chart, error) {
		return chart.Compose(m.Sizes, s, cfg.Style)
	})
	if err != nil {
		return err
	}

	_, err = runStage(ctx, tracer, logger, "render", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, chart.Save(cfg.OutputPath, c.Plot, cfg.Page)
	})
	if err != nil {
		return err
	}

	logger.Info("Chart written", zap.String("path", cfg.OutputPath))
	return nil
}

// runStage runs fn inside its own span, logging its start and completion.
// It does not start fn if ctx is already done.
func runStage[T any](
	ctx context.Context,
	tracer trace.Tracer,
	logger *zap.Logger,
	name string,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	logger.Debug("Starting stage", zap.String("stage", name))
	startTime := time.Now()
	result, err := fn(ctx)
	duration := time.Since(startTime)

	if err != nil {
		recordError(span, err)
		logger.Error("Stage failed",
			zap.String("stage", name),
			zap.Duration("duration", duration),
			zap.Error(err))
		return result, err
	}
	logger.Debug("Stage completed",
		zap.String("stage", name),
		zap.Duration("duration", duration))
	return result, nil
}

func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
