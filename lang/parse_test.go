package lang

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ardnew/corefmt/log"
)

func TestFormatString_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "minimal",
			input: "program int x; begin x=1; output x; end",
			want: "program\n" +
				"\tint x;\n" +
				"begin\n" +
				"\tx=1;\n" +
				"\toutput x;\n" +
				"end\n",
		},
		{
			name:  "no declarations",
			input: "program begin end",
			want:  "program\nbegin\nend\n",
		},
		{
			name:  "id list",
			input: "program int a, b,c; int d; begin input a; end",
			want: "program\n" +
				"\tint a,b,c;\n" +
				"\tint d;\n" +
				"begin\n" +
				"\tinput a;\n" +
				"end\n",
		},
		{
			name: "if else",
			input: `program int x, y; begin input x;
				if x<10 then y=1; else y=2; endif output y; end`,
			want: "program\n" +
				"\tint x,y;\n" +
				"begin\n" +
				"\tinput x;\n" +
				"\tif x<10 then\n" +
				"\t\ty=1;\n" +
				"\telse\n" +
				"\t\ty=2;\n" +
				"\tendif\n" +
				"\toutput y;\n" +
				"end\n",
		},
		{
			name: "nested blocks",
			input: `program int i; begin i=0;
				while i<3 begin if i==1 then output i; endif i=i+1; endwhile end`,
			want: "program\n" +
				"\tint i;\n" +
				"begin\n" +
				"\ti=0;\n" +
				"\twhile i<3 begin\n" +
				"\t\tif i==1 then\n" +
				"\t\t\toutput i;\n" +
				"\t\tendif\n" +
				"\t\ti=i+1;\n" +
				"\tendwhile\n" +
				"end\n",
		},
		{
			name: "conditions",
			input: `program int a; begin a=1;
				if !(a<2) then a=2; endif
				while or a<=1 begin a=a-1; endwhile end`,
			want: "program\n" +
				"\tint a;\n" +
				"begin\n" +
				"\ta=1;\n" +
				"\tif !(a<2) then\n" +
				"\t\ta=2;\n" +
				"\tendif\n" +
				"\twhile or a<=1 begin\n" +
				"\t\ta=a-1;\n" +
				"\tendwhile\n" +
				"end\n",
		},
		{
			name:  "nested condition parens",
			input: "program int a; begin if !(a==1 (a<2)) then a=1; endif end",
			want: "program\n" +
				"\tint a;\n" +
				"begin\n" +
				"\tif !(a==1(a<2)) then\n" +
				"\t\ta=1;\n" +
				"\tendif\n" +
				"end\n",
		},
		{
			name:  "expressions",
			input: "program int a; begin output ( a + 1 ) * 2 - a * ( 3 ); end",
			want: "program\n" +
				"\tint a;\n" +
				"begin\n" +
				"\toutput (a+1)*2-a*(3);\n" +
				"end\n",
		},
		{
			name:  "declaration in body",
			input: "program begin int t; t=5; output t; end",
			want: "program\n" +
				"begin\n" +
				"\tint t;\n" +
				"\tt=5;\n" +
				"\toutput t;\n" +
				"end\n",
		},
		{
			name:  "stray begin",
			input: "program int x; begin x=1; begin x=2; end",
			want: "program\n" +
				"\tint x;\n" +
				"begin\n" +
				"\tx=1;\n" +
				" begin\n" +
				"\tx=2;\n" +
				"end\n",
		},
		{
			name:  "block name reused after close",
			input: "program begin while 1<2 begin int t; t=1; endwhile int t; t=2; end",
			want: "program\n" +
				"begin\n" +
				"\twhile 1<2 begin\n" +
				"\t\tint t;\n" +
				"\t\tt=1;\n" +
				"\tendwhile\n" +
				"\tint t;\n" +
				"\tt=2;\n" +
				"end\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatString(t.Context(), tt.input)
			if err != nil {
				t.Fatalf("FormatString() error: %v", err)
			}

			if got != tt.want {
				t.Errorf("output =\n%s\nwant\n%s", got, tt.want)
			}

			// Formatting is idempotent.
			again, err := FormatString(t.Context(), got)
			if err != nil {
				t.Fatalf("reformat error: %v", err)
			}

			if again != got {
				t.Errorf("reformat =\n%s\nwant\n%s", again, got)
			}
		})
	}
}

func TestFormatString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    error
		attrs   map[string]string
		message string
	}{
		{
			name:    "duplicate declaration",
			input:   "program int x; int x; begin end",
			want:    ErrDuplicateDecl,
			attrs:   map[string]string{"identifier": "x"},
			message: "duplicate declaration: variable x was declared multiple times",
		},
		{
			name:  "duplicate in id list",
			input: "program int x, x; begin end",
			want:  ErrDuplicateDecl,
			attrs: map[string]string{"identifier": "x"},
		},
		{
			name:  "duplicate shadows outer name",
			input: "program int x; begin if x<1 then int x; endif end",
			want:  ErrDuplicateDecl,
			attrs: map[string]string{"identifier": "x"},
		},
		{
			name:  "else declaration is block local",
			input: "program int x; begin if x<1 then x=1; else int z; endif z=2; end",
			want:  ErrUndeclared,
			attrs: map[string]string{"identifier": "z"},
		},
		{
			name:    "undeclared assignment",
			input:   "program int x; begin y=1; end",
			want:    ErrUndeclared,
			attrs:   map[string]string{"identifier": "y"},
			message: "undeclared identifier: variable y not declared in scope",
		},
		{
			name:  "undeclared input",
			input: "program begin input z; end",
			want:  ErrUndeclared,
			attrs: map[string]string{"identifier": "z"},
		},
		{
			name:  "undeclared operand",
			input: "program int a; begin a=a+b; end",
			want:  ErrUndeclared,
			attrs: map[string]string{"identifier": "b"},
		},
		{
			name:  "block local after close",
			input: "program begin if 1<2 then int t; t=1; endif t=2; int t; end",
			want:  ErrUndeclared,
			attrs: map[string]string{"identifier": "t"},
		},
		{
			name:  "loop local after close",
			input: "program begin while 1<2 begin int t; endwhile output t; end",
			want:  ErrUndeclared,
			attrs: map[string]string{"identifier": "t"},
		},
		{
			name:  "did you mean",
			input: "program int count; begin cnt=1; end",
			want:  ErrUndeclared,
			attrs: map[string]string{"identifier": "cnt", "suggestion": "count"},
			message: "undeclared identifier: variable cnt not declared in scope " +
				"(did you mean count?)",
		},
		{
			name:    "missing program",
			input:   "begin end",
			want:    ErrSyntax,
			attrs:   map[string]string{"token": "BEGIN", "expected": "PROGRAM"},
			message: "syntax error: token BEGIN was invalidly placed, expected PROGRAM",
		},
		{
			name:  "missing assign",
			input: "program int x; begin x 1; end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": `CONST("1")`, "expected": "ASSIGN"},
		},
		{
			name:  "declaration without identifier",
			input: "program int; begin end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": "SEMICOLON", "expected": "ID"},
		},
		{
			name:  "not a statement",
			input: "program begin ; end",
			want:  ErrSyntax,
			attrs: map[string]string{
				"token":    "SEMICOLON",
				"expected": "ID, IF, ELSE, WHILE, BEGIN, INPUT, OUTPUT, INT",
			},
		},
		{
			name:  "missing comparison",
			input: "program int x; begin if x then x=1; endif end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": "THEN", "expected": "EQUAL, LESS, LESSEQUAL"},
			message: "syntax error: token THEN was invalidly placed, " +
				"expected one of {EQUAL, LESS, LESSEQUAL}",
		},
		{
			name:  "missing operand",
			input: "program begin output ; end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": "SEMICOLON", "expected": "ID, CONST, LPAREN"},
		},
		{
			name:  "lexical error",
			input: "program begin output 12ab; end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": `ERROR("12ab")`},
		},
		{
			name:  "constant out of range",
			input: "program begin output 2048; end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": `ERROR("2048")`},
		},
		{
			name:  "unterminated program",
			input: "program int x; begin x=1;",
			want:  ErrSyntax,
			attrs: map[string]string{"token": "EOF"},
		},
		{
			name:  "empty if body",
			input: "program int x; begin if x<1 then endif end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": "ENDIF"},
		},
		{
			name:  "reserved word",
			input: "program begin class end",
			want:  ErrSyntax,
			attrs: map[string]string{"token": "CLASS"},
		},
		{
			name:    "trailing content",
			input:   "program begin end end",
			want:    ErrTrailing,
			attrs:   map[string]string{"token": "END"},
			message: "trailing content: token END follows end of program",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatString(t.Context(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *Error", err)
			}

			if !e.Position().IsValid() {
				t.Errorf("error has no position")
			}

			for k, want := range tt.attrs {
				v, ok := e.Attr(k)
				if !ok || v.String() != want {
					t.Errorf("attr %q = %q, want %q", k, v.String(), want)
				}
			}

			if tt.message != "" && err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestFormatString_ErrorPosition(t *testing.T) {
	_, err := FormatString(t.Context(), "program\n  int x;\n  begin\n    x 1;\nend")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not *Error", err)
	}

	if got, want := e.Position(), (Position{4, 7}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestFormatString_NoSuggestionForUnrelatedName(t *testing.T) {
	_, err := FormatString(t.Context(), "program int x; begin y=1; end")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not *Error", err)
	}

	if v, ok := e.Attr("suggestion"); ok {
		t.Errorf("unexpected suggestion %q", v.String())
	}
}

func TestFormatString_PartialOutput(t *testing.T) {
	got, err := FormatString(t.Context(), "program int x; begin x=1; y=2; end")
	if !errors.Is(err, ErrUndeclared) {
		t.Fatalf("error = %v, want ErrUndeclared", err)
	}

	want := "program\n\tint x;\nbegin\n\tx=1;\n"
	if got != want {
		t.Errorf("partial output = %q, want %q", got, want)
	}
}

func TestFormatString_TrailingKeepsOutput(t *testing.T) {
	got, err := FormatString(t.Context(), "program begin end x")
	if !errors.Is(err, ErrTrailing) {
		t.Fatalf("error = %v, want ErrTrailing", err)
	}

	if want := "program\nbegin\nend\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFormatString_IndentWidth(t *testing.T) {
	got, err := FormatString(t.Context(),
		"program int x; begin while x<1 begin x=x+1; endwhile end",
		WithIndentWidth(2))
	if err != nil {
		t.Fatalf("FormatString() error: %v", err)
	}

	want := "program\n" +
		"  int x;\n" +
		"begin\n" +
		"  while x<1 begin\n" +
		"    x=x+1;\n" +
		"  endwhile\n" +
		"end\n"

	if got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestParse_TokenSource(t *testing.T) {
	src := NewTokens(
		Tok(KindProgram), Tok(KindInt), Tok(KindID, "n"), Tok(KindSemicolon),
		Tok(KindBegin), Tok(KindInput), Tok(KindID, "n"), Tok(KindSemicolon),
		Tok(KindEnd),
	)

	var sb strings.Builder
	if err := Parse(t.Context(), src, &sb); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if want := "program\n\tint n;\nbegin\n\tinput n;\nend\n"; sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestParse_AcceptsEveryTokenOnce(t *testing.T) {
	const src = `program int a, b; begin input a; b = a * 2;
		if a < b then output b; else output a; endif end`

	toks := make([]string, 0)
	for tok := range All(NewScannerString(src)) {
		toks = append(toks, tok.Text())
	}

	got, err := FormatString(t.Context(), src)
	if err != nil {
		t.Fatalf("FormatString() error: %v", err)
	}

	// Removing all whitespace from both sides leaves the token texts in order.
	strip := strings.NewReplacer(" ", "", "\t", "", "\n", "")
	if want := strip.Replace(strings.Join(toks, "")); strip.Replace(got) != want {
		t.Errorf("rendered tokens = %q, want %q", strip.Replace(got), want)
	}
}

func TestParse_WriteError(t *testing.T) {
	err := Parse(t.Context(), NewScannerString("program begin end"), &failingWriter{})
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("error = %v, want ErrWriteOutput", err)
	}
}

func TestParse_Logging(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"))

	_, err := FormatString(t.Context(),
		"program int x; begin if x<1 then x=1; endif end",
		WithLogger(logger))
	if err != nil {
		t.Fatalf("FormatString() error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		`"msg":"accept"`,
		`"token":"PROGRAM"`,
		`"msg":"scope push"`,
		`"msg":"scope pop"`,
		`"msg":"parse complete"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s", want)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check(t.Context(), strings.NewReader("program begin end")); err != nil {
		t.Errorf("Check(valid) error: %v", err)
	}

	err := Check(t.Context(), strings.NewReader("program begin x=1; end"))
	if !errors.Is(err, ErrUndeclared) {
		t.Errorf("Check(invalid) error = %v, want ErrUndeclared", err)
	}
}

func BenchmarkFormatString(b *testing.B) {
	var sb strings.Builder

	sb.WriteString("program int i, s; begin i=0; s=0;")

	for range 100 {
		sb.WriteString(" while i<10 begin if !(i==5) then s=s+i*2; else s=s-1; endif i=i+1; endwhile")
	}

	sb.WriteString(" output s; end")

	src := sb.String()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := FormatString(b.Context(), src); err != nil {
			b.Fatal(err)
		}
	}
}

func TestParse_AssignMarksScope(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		assigned map[string]bool
	}{
		{
			name:     "assignment",
			input:    "program int x, y; begin x=1; output y; end",
			assigned: map[string]bool{"x": true, "y": false},
		},
		{
			name:     "input is not assignment",
			input:    "program int x; begin input x; end",
			assigned: map[string]bool{"x": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(t.Context(), NewScannerString(tt.input), io.Discard, makeOptions())

			if err := p.parseProgram(); err != nil {
				t.Fatalf("parseProgram() error: %v", err)
			}

			for name, want := range tt.assigned {
				if got := p.scope.Assigned(name); got != want {
					t.Errorf("Assigned(%q) = %v, want %v", name, got, want)
				}
			}
		})
	}
}
