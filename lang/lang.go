package lang

import (
	"context"
	"io"
	"strings"

	"github.com/ardnew/corefmt/log"
)

// DefaultIndent is the indentation unit used unless [WithIndentWidth]
// selects spaces.
const DefaultIndent = "\t"

// Option configures parsing and formatting behavior.
type Option func(*options)

type options struct {
	indent string
	logger log.Logger
}

// WithIndentWidth indents each level with n spaces.
// A width of zero or less restores [DefaultIndent].
func WithIndentWidth(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.indent = DefaultIndent

			return
		}

		o.indent = strings.Repeat(" ", n)
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts ...Option) options {
	o := options{indent: DefaultIndent}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Format scans the Core program read from r, validates it, and writes its
// canonical rendering to w.
//
// Output is written as tokens are accepted. When an error is returned, w
// holds the rendering of everything accepted before the failure.
func Format(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	s, err := ReadScanner(r)
	if err != nil {
		return err
	}

	return Parse(ctx, s, w, opts...)
}

// FormatString is like [Format] for a program held in memory and returns the
// rendered text.
func FormatString(ctx context.Context, src string, opts ...Option) (string, error) {
	var sb strings.Builder

	err := Parse(ctx, NewScannerString(src), &sb, opts...)

	return sb.String(), err
}

// Check validates the Core program read from r without rendering it.
func Check(ctx context.Context, r io.Reader, opts ...Option) error {
	return Format(ctx, r, io.Discard, opts...)
}
