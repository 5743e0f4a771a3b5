package shell

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHandlerRespectsLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	h := NewColorHandler(&buf, slog.LevelWarn, false)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}

func TestColorHandlerWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewColorHandler(&buf, slog.LevelDebug, false)
	logger := slog.New(h)
	logger.Info("pipeline started", "nodes", 2)

	out := buf.String()
	assert.Contains(t, out, "pipeline started")
	assert.Contains(t, out, "nodes=2")
	assert.Contains(t, out, "INFO")
}

func TestColorHandlerWithAttrsCarriesOverToSubsequentRecords(t *testing.T) {
	var buf bytes.Buffer
	h := NewColorHandler(&buf, slog.LevelDebug, false).WithAttrs([]slog.Attr{slog.String("session", "abc")})
	logger := slog.New(h)
	logger.Debug("lexed line")

	assert.Contains(t, buf.String(), "session=abc")
}
