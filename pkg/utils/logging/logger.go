package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how much the logger writes
type Options struct {
	// Env prefixes the log file name
	Env string
	// Dir is the directory log files go to (default "logs")
	Dir string
	// Verbose lowers the console level to debug
	Verbose bool
}

// InitLogger initializes a zap logger writing human-readable lines to stderr and
// JSON lines to a timestamped file. Stdout is left for command output.
func InitLogger(opts Options) (*zap.Logger, error) {
	logger, _, err := newLogger(opts, os.Stderr, time.Now())
	return logger, err
}

func newLogger(opts Options, console zapcore.WriteSyncer, now time.Time) (*zap.Logger, string, error) {
	logsDir := opts.Dir
	if logsDir == "" {
		logsDir = "logs"
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	env := opts.Env
	if env == "" {
		env = "default"
	}
	logFileName := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", env, now.Format("2006-01-02_15-04-05")))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open log file: %w", err)
	}

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.TimeKey = "timestamp"
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleLevel := zapcore.InfoLevel
	if opts.Verbose {
		consoleLevel = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.Lock(console), consoleLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(logFile), zapcore.DebugLevel),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), logFileName, nil
}
