// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/number-classifier/config"
	"github.com/guttosm/number-classifier/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
