package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const timeLayout = "2006/01/02 15:04:05"

// Handler prints one line per record:
//
//	[time] [level] [module] message
//
// The level is left out for INFO records and attribute keys are dropped,
// only their values are printed, bracketed, in the order they were added.
// Attributes bound with WithAttrs come before the ones of the record.
type Handler struct {
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
	out   io.Writer
}

func NewHandler(o io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{level: level, mu: &sync.Mutex{}, out: o}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := *h
	c.attrs = append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)
	return &c
}

// WithGroup is a no-op: keys, grouped or not, are never printed.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	writeField(&sb, r.Time.Format(timeLayout))
	if r.Level != slog.LevelInfo {
		writeField(&sb, r.Level.String())
	}
	for _, a := range h.attrs {
		writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, a)
		return true
	})
	sb.WriteString(r.Message)
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			writeAttr(sb, ga)
		}
		return
	}
	if a.Equal(slog.Attr{}) {
		return
	}
	writeField(sb, v.String())
}

func writeField(sb *strings.Builder, s string) {
	sb.WriteByte('[')
	sb.WriteString(s)
	sb.WriteString("] ")
}
