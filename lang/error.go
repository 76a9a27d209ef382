package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
//
// Errors returned by this package are derived from these with [Error.With],
// [Error.Wrap], [Error.At], or [Error.Explain] and still match them with
// errors.Is.
var (
	ErrSyntax        = NewError("syntax error")
	ErrDuplicateDecl = NewError("duplicate declaration")
	ErrUndeclared    = NewError("undeclared identifier")
	ErrTrailing      = NewError("trailing content")
	ErrReadInput     = NewError("failed to read input")
	ErrWriteOutput   = NewError("failed to write output")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg    string
	detail string      // Human-readable description of this occurrence
	err    error       // Wrapped error (for errors.Unwrap)
	base   *Error      // Sentinel this error was derived from
	pos    Position    // Offending source location, if known
	attrs  []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message from whichever fields are set, in order:
	//
	//   "<msg>: <detail>: <err>"
	part := make([]string, 0, 3)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.detail != "" {
		part = append(part, e.detail)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.base == t
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.detail != "" {
		attrs = append(attrs, slog.String("detail", e.detail))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

// At returns a copy of e located at pos.
func (e *Error) At(pos Position) *Error {
	c := e.With(slog.Int("line", pos.Line), slog.Int("column", pos.Column))
	c.pos = pos

	return c
}

// Explain returns a copy of e with a description of the occurrence.
func (e *Error) Explain(detail string) *Error {
	c := e.clone()
	c.detail = detail

	return c
}

// Position returns the source location of the error, which is invalid when
// the error is not tied to a token.
func (e *Error) Position() Position { return e.pos }

// Attr returns the value of the first attribute with the given key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}

// Snippet renders the source line containing the error followed by a caret
// under the offending column. It returns "" if the error has no position or
// the position is outside of source.
func (e *Error) Snippet(source []byte) string {
	if !e.pos.IsValid() {
		return ""
	}

	lines := strings.Split(string(source), "\n")
	if e.pos.Line > len(lines) {
		return ""
	}

	line := strings.TrimRight(lines[e.pos.Line-1], "\r")
	num := strconv.Itoa(e.pos.Line)

	var src strings.Builder

	// Print the line with line number
	src.WriteString("  ")
	src.WriteString(num)
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	src.WriteString(strings.Repeat(" ", len(num)+5))

	// Keep tabs so the caret lines up with the rendered source line
	for i := 0; i < e.pos.Column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			src.WriteByte('\t')
		} else {
			src.WriteByte(' ')
		}
	}

	src.WriteString("^\n")

	return src.String()
}

func (e *Error) clone() *Error {
	c := *e
	if c.base == nil {
		c.base = e
	}

	return &c
}
