package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpgo/usdfmt/internal/currency"
)

var _ currency.Logger = (*SlogLogger)(nil)

func TestNewFiltersBelowWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debugf("formatted %v", 1.5)
	assert.Contains(t, buf.String(), "formatted 1.5")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestWrap(t *testing.T) {
	var buf bytes.Buffer
	l := Wrap(slog.New(slog.NewTextHandler(&buf, nil)))
	l.Infof("hello %s", "there")
	assert.Contains(t, buf.String(), "hello there")
}
