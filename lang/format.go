package lang

import (
	"io"
	"strings"
)

// layout is the spacing policy applied after a token's text.
type layout uint8

const (
	spaced layout = iota // text and a single space
	tight                // text only
	broken               // text and a line break
)

var layouts = [...]layout{
	KindProgram:   broken,
	KindBegin:     broken,
	KindEnd:       broken,
	KindSemicolon: broken,
	KindEndIf:     broken,
	KindEndWhile:  broken,
	KindThen:      broken,
	KindElse:      broken,
	KindID:        tight,
	KindConst:     tight,
	KindAssign:    tight,
	KindLParen:    tight,
	KindRParen:    tight,
	KindMult:      tight,
	KindAdd:       tight,
	KindSub:       tight,
	KindComma:     tight,
	KindLess:      tight,
	KindLessEqual: tight,
	KindEqual:     tight,
	KindNegation:  tight,
}

func layoutOf(k Kind) layout {
	if int(k) < len(layouts) {
		return layouts[k]
	}

	return spaced
}

// Formatter renders accepted tokens as canonically indented text.
//
// It tracks the current indentation depth and whether output is at the start
// of a line. Layout is derived only from the kinds of the rendered tokens, so
// formatting a program twice yields identical text.
type Formatter struct {
	w     io.Writer
	unit  string
	depth int
	bol   bool // at start of line
	begun bool // a BEGIN has been rendered
	err   error
}

// NewFormatter returns a formatter writing to w at depth zero.
// Only [WithIndentWidth] affects a Formatter.
func NewFormatter(w io.Writer, opts ...Option) *Formatter {
	return newFormatter(w, makeOptions(opts...))
}

func newFormatter(w io.Writer, o options) *Formatter {
	return &Formatter{w: w, unit: o.indent}
}

// Indent increases the depth by one level. It is called after accepting
// the keyword that opens a block.
func (f *Formatter) Indent() { f.depth++ }

// Depth returns the current indentation depth.
func (f *Formatter) Depth() int { return f.depth }

// Err returns the first error encountered writing output.
func (f *Formatter) Err() error { return f.err }

// Render writes tok with its indentation and spacing.
//
// At the start of a line every token except BEGIN and END is indented by the
// current depth. ELSE, ENDIF, and ENDWHILE first close one level. Every BEGIN
// after the first is separated from the preceding text by a space.
//
// Once a write fails, Render writes nothing further and returns that error.
func (f *Formatter) Render(tok Token) error {
	if f.err != nil {
		return f.err
	}

	var buf strings.Builder

	if f.bol && tok.Kind != KindBegin && tok.Kind != KindEnd {
		switch tok.Kind {
		case KindElse, KindEndIf, KindEndWhile:
			f.dedent()
		}

		buf.WriteString(strings.Repeat(f.unit, f.depth))
	}

	switch layoutOf(tok.Kind) {
	case broken:
		if tok.Kind == KindBegin {
			if f.begun {
				buf.WriteByte(' ')
			}

			f.begun = true
		}

		buf.WriteString(tok.Text())
		buf.WriteByte('\n')

		f.bol = true

	case tight:
		buf.WriteString(tok.Text())

		f.bol = false

	default:
		buf.WriteString(tok.Text())
		buf.WriteByte(' ')

		f.bol = false
	}

	if _, err := io.WriteString(f.w, buf.String()); err != nil {
		f.err = ErrWriteOutput.Wrap(err)
	}

	return f.err
}

func (f *Formatter) dedent() {
	if f.depth > 0 {
		f.depth--
	}
}
