// Package logger wraps zap with the small surface the CLI needs.
//
// Logs go to stderr so command output on stdout stays pipeable. The
// package keeps a global logger that commands reconfigure once flags and
// config files are parsed:
//
//	logger.SetGlobal(logger.MustNew(logger.Config{Level: "debug", Format: "console"}))
//	logger.Info("sweep finished", "formula", name, "samples", n)
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is json or console.
	Format      string `yaml:"format"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
	}
}

type Logger struct {
	zap    *zap.Logger
	sugar  *zap.SugaredLogger
	fields []any
}

func New(cfg Config) (*Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger that writes to w instead of stderr.
func NewWithWriter(cfg Config, w io.Writer) (*Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	z := zap.New(core, opts...)
	return &Logger{zap: z, sugar: z.Sugar()}, nil
}

func MustNew(cfg Config) *Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	z := zap.NewNop()
	return &Logger{zap: z, sugar: z.Sugar()}
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, append(l.fields, keysAndValues...)...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, append(l.fields, keysAndValues...)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, append(l.fields, keysAndValues...)...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, append(l.fields, keysAndValues...)...)
}

// With returns a logger that adds keysAndValues to every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	fields := make([]any, 0, len(l.fields)+len(keysAndValues))
	fields = append(fields, l.fields...)
	fields = append(fields, keysAndValues...)
	return &Logger{zap: l.zap, sugar: l.sugar, fields: fields}
}

func (l *Logger) Named(name string) *Logger {
	z := l.zap.Named(name)
	return &Logger{zap: z, sugar: z.Sugar(), fields: l.fields}
}

func (l *Logger) Sync() error {
	return l.zap.Sync()
}

var global = MustNew(DefaultConfig())

func SetGlobal(l *Logger) {
	global = l
}

func Global() *Logger {
	return global
}

func Debug(msg string, keysAndValues ...any) { global.Debug(msg, keysAndValues...) }
func Info(msg string, keysAndValues ...any)  { global.Info(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)  { global.Warn(msg, keysAndValues...) }
func Error(msg string, keysAndValues ...any) { global.Error(msg, keysAndValues...) }
