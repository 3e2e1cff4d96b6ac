package logging

import (
	"fmt"
	"maps"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements Logger on top of a sugared zap logger.
type ZapLogger struct {
	sugar  *zap.SugaredLogger
	level  zap.AtomicLevel
	fields Fields
}

// NewZapLogger builds a zap backed logger. Debug selects zap's development
// config (console encoder, debug level); otherwise the production config
// (JSON encoder, info level) is used.
func NewZapLogger(debug bool) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}

	base, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}

	return &ZapLogger{
		sugar:  base.Sugar(),
		level:  cfg.Level,
		fields: make(Fields),
	}, nil
}

// NewZapLoggerFrom wraps an existing zap logger. The level is fixed by the
// wrapped logger's core; SetLevel only affects loggers built by NewZapLogger.
func NewZapLoggerFrom(l *zap.Logger) *ZapLogger {
	return &ZapLogger{
		sugar:  l.WithOptions(zap.AddCallerSkip(2)).Sugar(),
		level:  zap.NewAtomicLevelAt(zapcore.DebugLevel),
		fields: make(Fields),
	}
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	z.sugar.Debugw(msg, z.keysAndValues(nil, fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	z.sugar.Infow(msg, z.keysAndValues(nil, fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	z.sugar.Warnw(msg, z.keysAndValues(nil, fields)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	z.sugar.Errorw(msg, z.keysAndValues(err, fields)...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(z.fields)+len(fields))
	maps.Copy(merged, z.fields)
	maps.Copy(merged, fields)

	return &ZapLogger{
		sugar:  z.sugar,
		level:  z.level,
		fields: merged,
	}
}

func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

// Sync flushes any buffered log entries.
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}

func (z *ZapLogger) keysAndValues(err error, fields []Fields) []any {
	all := make(Fields, len(z.fields))
	maps.Copy(all, z.fields)
	for _, f := range fields {
		maps.Copy(all, f)
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]any, 0, 2*len(keys)+2)
	if err != nil {
		kv = append(kv, zap.Error(err))
	}
	for _, k := range keys {
		kv = append(kv, k, all[k])
	}

	return kv
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
