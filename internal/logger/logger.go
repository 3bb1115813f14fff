package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/flashdeck/flashdeck/internal/config"
)

// New builds a logger writing to cfg.Log.Path, using production settings when
// cfg.Env is "production".
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	zc.OutputPaths = []string{cfg.Log.Path}
	zc.ErrorOutputPaths = []string{cfg.Log.Path}

	return zc.Build()
}
