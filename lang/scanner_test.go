package lang

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func scanAll(src string) []Token {
	return slices.Collect(All(NewScannerString(src)))
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}

	return out
}

func TestScanner_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "empty",
			input: "",
			want:  []Kind{},
		},
		{
			name:  "whitespace only",
			input: " \t\r\n\n ",
			want:  []Kind{},
		},
		{
			name:  "minimal program",
			input: "program int x; begin x=1; output x; end",
			want: []Kind{
				KindProgram, KindInt, KindID, KindSemicolon, KindBegin,
				KindID, KindAssign, KindConst, KindSemicolon,
				KindOutput, KindID, KindSemicolon, KindEnd,
			},
		},
		{
			name:  "comparison operators",
			input: "a==b<=c<d=e",
			want: []Kind{
				KindID, KindEqual, KindID, KindLessEqual, KindID,
				KindLess, KindID, KindAssign, KindID,
			},
		},
		{
			name:  "punctuation",
			input: "!(a,b)+-*;",
			want: []Kind{
				KindNegation, KindLParen, KindID, KindComma, KindID,
				KindRParen, KindAdd, KindSub, KindMult, KindSemicolon,
			},
		},
		{
			name:  "keywords",
			input: "if then else endif while endwhile input output or",
			want: []Kind{
				KindIf, KindThen, KindElse, KindEndIf, KindWhile,
				KindEndWhile, KindInput, KindOutput, KindOr,
			},
		},
		{
			name:  "reserved words",
			input: "new define extends class endclass endfunc",
			want: []Kind{
				KindNew, KindDefine, KindExtends, KindClass,
				KindEndClass, KindEndFunc,
			},
		},
		{
			name:  "keywords are case sensitive",
			input: "Program BEGIN",
			want:  []Kind{KindID, KindID},
		},
		{
			name:  "identifier with digits",
			input: "x1 endif2",
			want:  []Kind{KindID, KindID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(scanAll(tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanner_Constants(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		attr  string
	}{
		{"0", KindConst, "0"},
		{"1024", KindConst, "1024"},
		{"0007", KindConst, "0007"},
		{"1025", KindError, "1025"},
		{"00001", KindError, "00001"},
		{"99999", KindError, "99999"},
		{"12ab", KindError, "12ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewScannerString(tt.input).Current()

			if tok.Kind != tt.kind || tok.Attr != tt.attr {
				t.Errorf("scanned %v, want %v(%q)", tok, tt.kind, tt.attr)
			}
		})
	}
}

func TestScanner_InvalidCharacter(t *testing.T) {
	toks := scanAll("x @ é y")

	want := []Token{
		{Kind: KindID, Attr: "x", Pos: Position{1, 1}},
		{Kind: KindError, Attr: "@", Pos: Position{1, 3}},
		{Kind: KindError, Attr: "é", Pos: Position{1, 5}},
		{Kind: KindID, Attr: "y", Pos: Position{1, 8}},
	}

	if !slices.Equal(toks, want) {
		t.Errorf("tokens = %v, want %v", toks, want)
	}
}

func TestScanner_Positions(t *testing.T) {
	toks := scanAll("program\n  int x;\nbegin")

	want := []Position{{1, 1}, {2, 3}, {2, 7}, {2, 8}, {3, 1}}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, tok := range toks {
		if tok.Pos != want[i] {
			t.Errorf("token %d (%v) at %v, want %v", i, tok, tok.Pos, want[i])
		}
	}
}

func TestScanner_EOFIsSticky(t *testing.T) {
	s := NewScannerString("x")
	s.Advance()

	for range 3 {
		if tok := s.Current(); tok.Kind != KindEOF {
			t.Fatalf("Current() = %v, want EOF", tok)
		}

		s.Advance()
	}

	if got := s.Current().Pos; got != (Position{1, 2}) {
		t.Errorf("EOF position = %v, want 1:2", got)
	}
}

func TestScanner_CurrentDoesNotConsume(t *testing.T) {
	s := NewScannerString("a b")

	if s.Current() != s.Current() {
		t.Fatal("repeated Current() calls differ")
	}

	first := s.Current()
	s.Advance()

	if s.Current() == first {
		t.Error("Advance() did not move past the current token")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadScanner(t *testing.T) {
	s, err := ReadScanner(strings.NewReader("begin end"))
	if err != nil {
		t.Fatalf("ReadScanner() error: %v", err)
	}

	if string(s.Source()) != "begin end" {
		t.Errorf("Source() = %q", s.Source())
	}

	if _, err := ReadScanner(failingReader{}); !errors.Is(err, ErrReadInput) {
		t.Errorf("ReadScanner(failing) error = %v, want ErrReadInput", err)
	}
}

func TestTokens_Source(t *testing.T) {
	src := NewTokens(Tok(KindBegin), Tok(KindEnd))

	got := kinds(slices.Collect(All(src)))
	if !slices.Equal(got, []Kind{KindBegin, KindEnd}) {
		t.Errorf("kinds = %v", got)
	}

	src.Advance()

	if tok := src.Current(); tok.Kind != KindEOF {
		t.Errorf("Current() after exhaustion = %v, want EOF", tok)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	src := NewScannerString("a b c")

	for tok := range All(src) {
		if tok.ID() == "b" {
			break
		}
	}

	if tok := src.Current(); tok.ID() != "c" {
		t.Errorf("Current() after break = %v, want ID(c)", tok)
	}
}
