// Package klog wraps a zap.SugaredLogger with kernel-flavored helper names,
// so call sites read like the original's printk() calls while producing
// structured fields instead of a flat string.
package klog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger = mustBuild()
)

func mustBuild() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		// There is no kernel log to fall back to if the logger itself can't
		// be constructed; a no-op logger keeps every call site panic-free.
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLogger replaces the package logger, letting cmd/fatls install a
// differently configured one (e.g. a development config with color output)
// without every other package needing to know about *zap.Logger at all.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func current() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Printk logs an informational message with structured fields, the
// structured-logging equivalent of the original's printk(...) call sites.
func Printk(msg string, fields ...interface{}) {
	current().Infow(msg, fields...)
}

// Debugf logs a formatted debug message. Used for the high-volume,
// syscall-dispatch-level traces that would flood an info log.
func Debugf(template string, args ...interface{}) {
	current().Debugf(template, args...)
}

// Warnk logs a recoverable anomaly: a condition worth a kernel operator's
// attention but not one that aborts the calling syscall.
func Warnk(msg string, fields ...interface{}) {
	current().Warnw(msg, fields...)
}

// Errk logs a syscall failure with its errno, mirroring the original's habit
// of logging right before translating an internal error into -errno.
func Errk(msg string, err error, fields ...interface{}) {
	current().Errorw(msg, append(fields, "error", err)...)
}

// Sync flushes any buffered log entries. Callers (notably cmd/fatls) should
// defer it once at process startup.
func Sync() error {
	return current().Sync()
}
