// Package main is the entry point for the parametric curve viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Loufouh/PE-Parametric-Curves/internal/config"
	"github.com/Loufouh/PE-Parametric-Curves/internal/logger"
	"github.com/Loufouh/PE-Parametric-Curves/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Parametric curves ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		v.Close()
		logger.Sync()
		os.Exit(1)
	}
	v.Close()

	logger.Info("viewer closed normally")
}
