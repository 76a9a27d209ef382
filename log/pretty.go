package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty text handler. Styles are bound
// to a renderer for the handler's writer, so colors are dropped automatically
// when the writer is not a terminal.
type palette struct {
	key     lipgloss.Style
	str     lipgloss.Style
	num     lipgloss.Style
	yes     lipgloss.Style
	no      lipgloss.Style
	dur     lipgloss.Style
	stamp   lipgloss.Style
	trace   lipgloss.Style
	debug   lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	message lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		key:     r.NewStyle().Foreground(lipgloss.Color("8")),
		str:     r.NewStyle().Foreground(lipgloss.Color("6")),
		num:     r.NewStyle().Foreground(lipgloss.Color("3")),
		yes:     r.NewStyle().Foreground(lipgloss.Color("2")),
		no:      r.NewStyle().Foreground(lipgloss.Color("1")),
		dur:     r.NewStyle().Foreground(lipgloss.Color("5")),
		stamp:   r.NewStyle().Foreground(lipgloss.Color("4")),
		trace:   r.NewStyle().Foreground(lipgloss.Color("8")),
		debug:   r.NewStyle().Foreground(lipgloss.Color("4")),
		info:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		message: r.NewStyle().Bold(true),
	}
}

func (p palette) level(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return p.fail
	case level >= slog.LevelWarn:
		return p.warn
	case level >= slog.LevelInfo:
		return p.info
	case level >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	style  palette
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:  *opts,
		style: makePalette(w),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeAttr(buf, h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{
		opts:   h.opts,
		style:  h.style,
		mu:     h.mu,
		w:      h.w,
		attrs:  append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
		groups: h.groups,
	}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{
		opts:   h.opts,
		style:  h.style,
		mu:     h.mu,
		w:      h.w,
		attrs:  h.attrs,
		groups: append(h.groups[:len(h.groups):len(h.groups)], name),
	}
}

// replace applies the configured ReplaceAttr hook to a built-in attribute.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			if a.Key != "" {
				ga.Key = a.Key + "." + ga.Key
			}

			h.writeAttr(buf, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(a.Key))
	buf.WriteByte('=')

	switch a.Key {
	case slog.LevelKey:
		buf.WriteString(h.levelString(a.Value))

		return

	case slog.MessageKey:
		buf.WriteString(h.style.message.Render(a.Value.String()))

		return
	}

	h.writeValue(buf, a.Value)
}

func (h *prettyTextHandler) levelString(v slog.Value) string {
	if level, ok := v.Any().(slog.Level); ok {
		return h.style.level(level).Render(level.String())
	}

	// ReplaceAttr has already rendered the level name
	level := ParseLevel(v.String())

	return h.style.level(slog.Level(level)).Render(v.String())
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(h.style.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(h.style.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(h.style.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(h.style.num.Render(
			strconv.FormatFloat(v.Float64(), 'g', -1, 64),
		))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(h.style.yes.Render("true"))
		} else {
			buf.WriteString(h.style.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(h.style.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(h.style.stamp.Render(v.Time().String()))

	default:
		buf.WriteString(h.style.str.Render(v.String()))
	}
}
