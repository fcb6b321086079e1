// Package logger wraps zap for structured logging.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log     *zap.Logger
	once    sync.Once
	logFile = "" // No file logging unless a path is set
)

// SetLogPath enables JSON file logging at path. It must be called before
// the logger is first initialized. By default the tool writes nothing to
// disk besides the corpus itself.
func SetLogPath(path string) {
	logFile = path
}

// InitLogger initializes the Zap logger with structured logging. Console
// output goes to stderr so generated-file progress lines never mix with
// anything a caller might pipe from stdout.
func InitLogger() {
	once.Do(func() {
		level := zap.NewAtomicLevelAt(zap.InfoLevel)

		// Configure console logging
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level)

		// Optionally tee into a JSON log file
		if logFile != "" {
			fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
			file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				fileCore := zapcore.NewCore(fileEncoder, zapcore.AddSync(file), level)
				core = zapcore.NewTee(core, fileCore)
			}
		}

		log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	})
}

// GetLogger provides access to the initialized logger.
func GetLogger() *zap.Logger {
	if log == nil {
		InitLogger()
	}
	return log
}

// ResetLogger discards the current logger so the next InitLogger call
// rebuilds it. Intended for tests.
func ResetLogger() {
	if log != nil {
		_ = log.Sync()
	}
	log = nil
	once = sync.Once{}
}

// Sync ensures buffered logs are written before the application exits.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
