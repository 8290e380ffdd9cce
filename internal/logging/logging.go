package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/roster/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON zap logger writing to cfg.File at cfg.Level. Without a
// file it returns a no-op logger. The returned sync func flushes buffered
// entries and is never nil.
func New(cfg config.LogConfig) (*zap.Logger, func(), error) {
	if cfg.File == "" {
		return zap.NewNop(), func() {}, nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, func() {}, fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, func() {}, fmt.Errorf("creating log directory: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}
	zcfg.Sampling = nil

	logger, err := zcfg.Build()
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
