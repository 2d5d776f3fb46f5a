package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Nzyazin/fincalc/pkg/config"
)

type Field = zap.Field

type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

func StringField(key, value string) Field { return zap.String(key, value) }

func ErrorField(key string, err error) Field { return zap.NamedError(key, err) }

func AnyField(key string, value interface{}) Field { return zap.Any(key, value) }

func Int64Field(key string, value int64) Field { return zap.Int64(key, value) }

func IntField(key string, value int) Field { return zap.Int(key, value) }

func Float64Field(key string, value float64) Field { return zap.Float64(key, value) }

func BoolField(key string, value bool) Field { return zap.Bool(key, value) }

func DurationField(key string, value time.Duration) Field { return zap.Duration(key, value) }

// NewLogger builds a logger with two cores: everything up to info goes to the
// info sink, warn and above to the error sink. With cfg.Dir set the sinks are
// info.log and error.log inside it, otherwise stdout and stderr.
func NewLogger(cfg config.LogConfig) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	infoSink, errorSink, closeSinks, err := openSinks(cfg.Dir)
	if err != nil {
		return nil, nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	infoCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		infoSink,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= level && lvl <= zapcore.InfoLevel
		}),
	)

	errorCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		errorSink,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= level && lvl >= zapcore.WarnLevel
		}),
	)

	logger := zap.New(zapcore.NewTee(infoCore, errorCore), zap.AddCaller())

	cleanup := func() {
		_ = logger.Sync()
		closeSinks()
	}

	return logger, cleanup, nil
}

func openSinks(dir string) (zapcore.WriteSyncer, zapcore.WriteSyncer, func(), error) {
	if dir == "" {
		return zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	infoFile, err := os.OpenFile(filepath.Join(dir, "info.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open info log file: %w", err)
	}

	errorFile, err := os.OpenFile(filepath.Join(dir, "error.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		infoFile.Close()
		return nil, nil, nil, fmt.Errorf("open error log file: %w", err)
	}

	closeFiles := func() {
		infoFile.Close()
		errorFile.Close()
	}

	return zapcore.AddSync(infoFile), zapcore.AddSync(errorFile), closeFiles, nil
}
