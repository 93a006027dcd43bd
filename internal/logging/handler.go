// Package logging bridges log/slog records into a zerolog logger so the
// library's slog output and the command's own messages share one console.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

// Handler is a slog.Handler that writes through a zerolog.Logger.
// Group names become dot-separated key prefixes.
type Handler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	prefix string
}

// NewHandler returns a Handler writing through logger.
func NewHandler(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

// New returns a slog.Logger writing zerolog events to w at level and above,
// each stamped with the time.
func New(w io.Writer, level slog.Level) *slog.Logger {
	zl := zerolog.New(w).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Logger()
	return slog.New(NewHandler(zl))
}

// NewConsole is New with zerolog's human-readable console format.
func NewConsole(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: "15:04:05"}, level)
}

// Enabled reports whether the zerolog logger accepts records at level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	zl := zerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Handle writes r as one zerolog event.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	ev := h.logger.WithLevel(zerologLevel(r.Level))
	if ev == nil {
		return nil
	}
	for _, a := range h.attrs {
		addAttr(ev, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(ev, h.prefix, a)
		return true
	})
	ev.Msg(r.Message)
	return nil
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup returns a handler that nests later attributes under name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func addAttr(ev *zerolog.Event, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return
	}
	key := prefix + a.Key

	switch v.Kind() {
	case slog.KindString:
		ev.Str(key, v.String())
	case slog.KindInt64:
		ev.Int64(key, v.Int64())
	case slog.KindUint64:
		ev.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		ev.Float64(key, v.Float64())
	case slog.KindBool:
		ev.Bool(key, v.Bool())
	case slog.KindDuration:
		ev.Dur(key, v.Duration())
	case slog.KindTime:
		ev.Time(key, v.Time())
	case slog.KindGroup:
		sub := prefix
		if a.Key != "" {
			sub = key + "."
		}
		for _, ga := range v.Group() {
			addAttr(ev, sub, ga)
		}
	default:
		switch x := v.Any().(type) {
		case error:
			ev.AnErr(key, x)
		case fmt.Stringer:
			ev.Stringer(key, x)
		default:
			ev.Interface(key, x)
		}
	}
}

// zerologLevel maps a slog level onto the nearest zerolog level.
func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l < slog.LevelDebug:
		return zerolog.TraceLevel
	case l < slog.LevelInfo:
		return zerolog.DebugLevel
	case l < slog.LevelWarn:
		return zerolog.InfoLevel
	case l < slog.LevelError:
		return zerolog.WarnLevel
	}
	return zerolog.ErrorLevel
}
