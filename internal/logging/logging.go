// Package logging is the core's one exposed diagnostic sink: a single
// timed_msg(text) entry point. Everything downstream of that call —
// encoder, rotation, level — is this package's business, not the core's.
package logging

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the façade. Zero value logs to stdout.
type Options struct {
	Stdout     bool
	Filename   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
}

var std = New(Options{Stdout: true})

// logger wraps a zap.SugaredLogger behind the one-function-call contract
// the core depends on.
type logger struct {
	sugared *zap.SugaredLogger
}

// New builds a logger from opt. Call SetOptions to replace the package
// default once configuration has loaded.
func New(opt Options) *logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var w zapcore.WriteSyncer
	if opt.Stdout || opt.Filename == "" {
		w = zapcore.AddSync(os.Stdout)
	} else {
		if err := os.MkdirAll(filepath.Dir(opt.Filename), os.ModePerm); err != nil {
			panic(err)
		}
		w = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    opt.MaxSize,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAge,
			LocalTime:  true,
		})
	}

	core := zapcore.NewCore(encoder, w, zapcore.InfoLevel)
	return &logger{sugared: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()}
}

// SetOptions replaces the package-default logger. Call once during
// startup, before any connection is served.
func SetOptions(opt Options) {
	std = New(opt)
}

// TimedMsg emits one timestamped diagnostic line. It never fails
// observably — a write failure to the underlying sink is swallowed by
// zap itself, matching the core's contract that logging is side-effecting
// and never blocks the caller on an error.
func TimedMsg(text string) {
	std.sugared.Info(text)
}
