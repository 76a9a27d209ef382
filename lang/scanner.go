package lang

import (
	"io"
	"log/slog"
	"strconv"
	"unicode/utf8"
)

const (
	// maxConstDigits and maxConst bound the integer constants of the
	// language. Anything outside scans as ERROR.
	maxConstDigits = 4
	maxConst       = 1024
)

// Scanner is a [Source] that lazily splits Core source text into tokens.
type Scanner struct {
	src  []byte
	off  int
	line int
	col  int
	cur  Token
}

// NewScanner returns a scanner positioned at the first token of src.
func NewScanner(src []byte) *Scanner {
	s := &Scanner{src: src, line: 1, col: 1}
	s.cur = s.next()

	return s
}

// NewScannerString returns a scanner over the given source string.
func NewScannerString(src string) *Scanner {
	return NewScanner([]byte(src))
}

// ReadScanner reads all of r and returns a scanner over its content.
func ReadScanner(r io.Reader) (*Scanner, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return NewScanner(src), nil
}

// Source returns the complete text being scanned.
func (s *Scanner) Source() []byte { return s.src }

// Current implements [Source].
func (s *Scanner) Current() Token { return s.cur }

// Advance implements [Source].
func (s *Scanner) Advance() {
	if s.cur.Kind == KindEOF {
		return
	}

	s.cur = s.next()
}

// next scans the token starting at the current offset.
func (s *Scanner) next() Token {
	s.skipSpace()

	pos := Position{Line: s.line, Column: s.col}

	if s.off >= len(s.src) {
		return Token{Kind: KindEOF, Pos: pos}
	}

	ch := s.src[s.off]

	switch {
	case isLetter(ch):
		word := s.take(isAlnum)
		if kind, ok := keywords[word]; ok {
			return Token{Kind: kind, Pos: pos}
		}

		return Token{Kind: KindID, Attr: word, Pos: pos}

	case isDigit(ch):
		return s.number(pos)
	}

	s.bump(1)

	kind := KindError

	switch ch {
	case ';':
		kind = KindSemicolon
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case ',':
		kind = KindComma
	case '+':
		kind = KindAdd
	case '-':
		kind = KindSub
	case '*':
		kind = KindMult
	case '!':
		kind = KindNegation
	case '=':
		kind = KindAssign
		if s.peek() == '=' {
			s.bump(1)

			kind = KindEqual
		}
	case '<':
		kind = KindLess
		if s.peek() == '=' {
			s.bump(1)

			kind = KindLessEqual
		}
	default:
		// Report the whole rune, not just its first byte.
		r, size := utf8.DecodeRune(s.src[s.off-1:])
		s.bump(size - 1)

		return Token{Kind: KindError, Attr: string(r), Pos: pos}
	}

	return Token{Kind: kind, Pos: pos}
}

// number scans a constant. Constants outside the supported range scan as
// ERROR. So does a digit run running into letters, such as 12ab: it is one
// ERROR token rather than an identifier, since identifiers start with a letter.
func (s *Scanner) number(pos Position) Token {
	digits := s.take(isDigit)

	if s.off < len(s.src) && isLetter(s.src[s.off]) {
		rest := s.take(isAlnum)

		return Token{Kind: KindError, Attr: digits + rest, Pos: pos}
	}

	if len(digits) > maxConstDigits {
		return Token{Kind: KindError, Attr: digits, Pos: pos}
	}

	if n, err := strconv.Atoi(digits); err != nil || n > maxConst {
		return Token{Kind: KindError, Attr: digits, Pos: pos}
	}

	return Token{Kind: KindConst, Attr: digits, Pos: pos}
}

func (s *Scanner) skipSpace() {
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '\n':
			s.off++
			s.line++
			s.col = 1
		case ' ', '\t', '\r', '\f', '\v':
			s.bump(1)
		default:
			return
		}
	}
}

// take consumes the longest run of bytes satisfying fn and returns it.
func (s *Scanner) take(fn func(byte) bool) string {
	start := s.off
	for s.off < len(s.src) && fn(s.src[s.off]) {
		s.bump(1)
	}

	return string(s.src[start:s.off])
}

func (s *Scanner) bump(n int) {
	s.off += n
	s.col += n
}

func (s *Scanner) peek() byte {
	if s.off >= len(s.src) {
		return 0
	}

	return s.src[s.off]
}

// LogValue implements slog.LogValuer.
func (s *Scanner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", len(s.src)),
		slog.Int("offset", s.off),
		slog.String("current", s.cur.String()),
	)
}

func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' }

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlnum(ch byte) bool { return isLetter(ch) || isDigit(ch) }
