package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
)

// colorHandler is a minimal slog.Handler that colorizes the level field,
// in the same style as the reference pack's HTTP text handler: plain
// timestamp, colored level, then space-joined key=value attrs. Debug/trace
// output is the shell's -debug flag (spec §6), never the REPL's own
// stdout/stderr conversation with the user (spec §7).
type colorHandler struct {
	w      io.Writer
	level  slog.Level
	color  bool
	attrs  []slog.Attr
	groups []string
}

// NewColorHandler builds a slog.Handler writing to w, colorizing the level
// field when color is true.
func NewColorHandler(w io.Writer, level slog.Level, color bool) slog.Handler {
	return &colorHandler{w: w, level: level, color: color}
}

func (h *colorHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	c := color.New()
	color.NoColor = !h.color

	if _, err := fmt.Fprintf(h.w, "%s ", r.Time.Format(time.RFC3339)); err != nil {
		return err
	}

	switch r.Level {
	case slog.LevelDebug:
		c = color.New(color.FgCyan)
	case slog.LevelInfo:
		c = color.New(color.FgBlue)
	case slog.LevelWarn:
		c = color.New(color.FgYellow)
	case slog.LevelError:
		c = color.New(color.FgRed)
	}
	if _, err := c.Fprintf(h.w, "%-5s ", r.Level.String()); err != nil {
		return err
	}

	for _, a := range h.attrs {
		fmt.Fprintf(h.w, "%s=%v ", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, "%s=%v ", a.Key, a.Value)
		return true
	})
	fmt.Fprintln(h.w, r.Message)
	return nil
}
