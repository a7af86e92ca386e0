package logging

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// Init builds the root logger. Dev mode logs debug and up to the console;
// otherwise info and up. A non-empty logFile adds a JSON sink. The returned
// func flushes the logger and closes the file.
func Init(devmode bool, logFile string) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if devmode {
		level = zapcore.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	filter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	console := zapcore.Lock(os.Stderr)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), console, filter),
	}

	closeFile := func() {}
	if logFile != "" {
		sink, closeSink, err := zap.Open(logFile)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open log file %s", logFile)
		}
		closeFile = closeSink
		jsonEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(jsonEncoder, sink, filter))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	rootLogger = logger
	rootLogger.Info("Logging initialized", zap.Bool("devmode", devmode))
	return logger, func() {
		_ = logger.Sync()
		closeFile()
	}, nil
}

// Named returns a child of the root logger.
func Named(name string) *zap.Logger {
	return rootLogger.Named(name)
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}

// With returns a context carrying logger.
func With(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
