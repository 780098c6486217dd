// SPDX-License-Identifier: MIT
//
// Package layoutlog wraps zerolog with a nil-safe default, so every
// package in this module can accept a *layoutlog.Logger without forcing
// callers who don't care about diagnostics to construct one.
package layoutlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger. The zero value is not usable; use
// Disabled() or New() to obtain one. A nil *Logger is always safe to
// call methods on and discards everything, so components can hold a
// *Logger field without a separate "has logging" flag.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing human-readable console output to w.
func New(w io.Writer) *Logger {
	return &Logger{zl: zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()}
}

// Default builds a Logger writing to stderr. It sets no level filter of
// its own, so Debug events are written too.
func Default() *Logger {
	return New(os.Stderr)
}

// Disabled returns a Logger that drops every event. Equivalent to a nil
// *Logger for every method here, spelled out for callers that prefer an
// explicit value over a nil check.
func Disabled() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With returns a child Logger with the given key/value pair attached to
// every subsequent event.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.zl.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.zl.Warn().Msg(msg)
}

func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	l.zl.Error().Err(err).Msg(msg)
}
