// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command scaling reads dft.h5 from the working directory and writes the
// speed-up chart to scalling.pdf.
package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/petenewcomb/dftscaling"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := scaling.DefaultConfig
	cfg.Logger = logger
	if err := scaling.Run(context.Background(), cfg); err != nil {
		logger.Error("Error creating chart", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
