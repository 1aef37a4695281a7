// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package scaling

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/perf/benchunit"

	"github.com/petenewcomb/dftscaling/internal/measure"
	"github.com/petenewcomb/dftscaling/internal/speedup"
)

// logReport logs the reference times followed by one line per run with every
// speed-up of that run.
func logReport(logger *zap.Logger, m *measure.Measurements, s *speedup.Series) {
	logger.Info("Reference times",
		zap.String("compress", formatSeconds(m.Target[measure.Compress])),
		zap.String("decompress", formatSeconds(m.Target[measure.Decompress])),
		zap.String("total", formatSeconds(speedup.TargetSum(m))))

	for i, threads := range m.Sizes {
		logger.Info("Speed-up",
			zap.Float64("threads", threads),
			zap.String("totalNaive", formatSpeedup(s.TotalNaive[i])),
			zap.String("totalEfficient", formatSpeedup(s.TotalEfficient[i])),
			zap.String("compressNaive", formatSpeedup(s.CompressNaive[i])),
			zap.String("decompressNaive", formatSpeedup(s.DecompressNaive[i])),
			zap.String("compressEfficient", formatSpeedup(s.CompressEfficient[i])),
			zap.String("decompressEfficient", formatSpeedup(s.DecompressEfficient[i])))
	}
}

func formatSeconds(v float64) string {
	return benchunit.Scale(v, benchunit.Decimal) + "s"
}

func formatSpeedup(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.Abs(v) < 10:
		return fmt.Sprintf("%.2fx", v)
	default:
		return fmt.Sprintf("%.1fx", v)
	}
}
