// Package logging adapts log/slog to the formatter's Logger interface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// SlogLogger implements currency.Logger on top of a slog.Logger.
type SlogLogger struct {
	l *slog.Logger
}

// New returns a text logger writing to w. Debug output is enabled when verbose is set.
func New(w io.Writer, verbose bool) *SlogLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &SlogLogger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Wrap adapts an existing slog.Logger.
func Wrap(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s *SlogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s *SlogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s *SlogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
