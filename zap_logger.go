package particleviz

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ZapLogger is a Logger backed by zap, with colored console output and an
// optional rotated log file.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
	base  zapcore.Level
}

// NewZapLogger builds a logger from cfg. The console core writes to stdout.
func NewZapLogger(cfg LoggingConfig) *ZapLogger {
	return newZapLogger(cfg, zapcore.AddSync(os.Stdout))
}

// newZapLogger allows a nil console for file-only logging.
func newZapLogger(cfg LoggingConfig, console zapcore.WriteSyncer) *ZapLogger {
	base := parseLevel(cfg.Level)
	level := zap.NewAtomicLevelAt(base)

	var cores []zapcore.Core
	if console != nil {
		encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(encoder, console, level))
	}

	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(fileWriter), level))
	}

	// Skip the ZapLogger frame so callers show up in the caller field.
	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &ZapLogger{sugar: l.Sugar(), level: level, base: base}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) DebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

// SetDebug lowers the level to debug, or restores the configured level.
func (l *ZapLogger) SetDebug(enabled bool) {
	if enabled {
		l.level.SetLevel(zapcore.DebugLevel)
		return
	}
	l.level.SetLevel(l.base)
}

func (l *ZapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *ZapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
