package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/paladin/internal/errors"
)

// NewLogger builds a JSON file logger. The terminal belongs to the menus, so
// nothing is written to stdout; an empty path disables logging.
func NewLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	zapConfig := zap.Config{
		Level:             level,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{path},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build logger for %s", path)
	}
	return logger, nil
}
