package lang

import "iter"

// Source supplies tokens to the grammar engine one at a time.
//
// Current returns the token at the current position without consuming it
// and may be called any number of times. Advance moves forward exactly one
// token. Once the input is exhausted, Current returns a [KindEOF] token
// indefinitely and Advance has no effect.
type Source interface {
	Current() Token
	Advance()
}

// Tokens is a [Source] backed by a slice of tokens that were produced
// elsewhere.
type Tokens struct {
	toks []Token
	pos  int
}

// NewTokens returns a [Source] yielding toks in order, followed by EOF.
func NewTokens(toks ...Token) *Tokens {
	return &Tokens{toks: toks}
}

// Current implements [Source].
func (t *Tokens) Current() Token {
	if t.pos < len(t.toks) {
		return t.toks[t.pos]
	}

	return Token{Kind: KindEOF}
}

// Advance implements [Source].
func (t *Tokens) Advance() {
	if t.pos < len(t.toks) {
		t.pos++
	}
}

// All returns an iterator over the tokens remaining in src, up to but not
// including EOF. Iterating consumes src.
func All(src Source) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for tok := src.Current(); tok.Kind != KindEOF; tok = src.Current() {
			src.Advance()

			if !yield(tok) {
				return
			}
		}
	}
}
