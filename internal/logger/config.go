package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects encoder, level and destination.
type Config struct {
	// Env is "dev" (console) or "prod" (JSON). Default: "dev".
	Env string
	// Level is "debug", "info", "warn" or "error". Default: "warn".
	Level string
	// Output receives log lines. Default: os.Stderr.
	Output io.Writer
}

// New builds a logger for cfg. An unknown level falls back to warn.
func New(cfg Config) *zap.Logger {
	level := parseLevel(cfg.Level)
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	ws := zapcore.Lock(zapcore.AddSync(out))

	if strings.ToLower(strings.TrimSpace(cfg.Env)) == "prod" {
		return buildProd(level, ws)
	}
	return buildDev(level, ws)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

func buildDev(level zapcore.Level, ws zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, level)
	return zap.New(core, zap.AddCaller())
}

func buildProd(level zapcore.Level, ws zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// parseLevel converts a level name to zapcore.Level.
func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
