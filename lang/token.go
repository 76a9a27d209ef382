package lang

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

import (
	"slices"
	"strconv"
	"strings"
)

// Kind identifies a terminal of the Core grammar.
// The set is closed; the scanner never produces any other kind.
type Kind uint8

const (
	KindEOF       Kind = iota // EOF
	KindError                 // ERROR
	KindProgram               // PROGRAM
	KindBegin                 // BEGIN
	KindEnd                   // END
	KindNew                   // NEW
	KindDefine                // DEFINE
	KindExtends               // EXTENDS
	KindClass                 // CLASS
	KindEndClass              // ENDCLASS
	KindInt                   // INT
	KindEndFunc               // ENDFUNC
	KindIf                    // IF
	KindThen                  // THEN
	KindElse                  // ELSE
	KindWhile                 // WHILE
	KindEndWhile              // ENDWHILE
	KindEndIf                 // ENDIF
	KindSemicolon             // SEMICOLON
	KindLParen                // LPAREN
	KindRParen                // RPAREN
	KindComma                 // COMMA
	KindAssign                // ASSIGN
	KindNegation              // NEGATION
	KindOr                    // OR
	KindEqual                 // EQUAL
	KindLess                  // LESS
	KindLessEqual             // LESSEQUAL
	KindAdd                   // ADD
	KindSub                   // SUB
	KindMult                  // MULT
	KindInput                 // INPUT
	KindOutput                // OUTPUT
	KindConst                 // CONST
	KindID                    // ID
)

// literal is the rendered text of each kind. ID and CONST render their
// attribute instead. THEN carries a leading space so that it separates from
// the tightly rendered condition before it.
var literal = [...]string{
	KindEOF:       "eof",
	KindError:     "error",
	KindProgram:   "program",
	KindBegin:     "begin",
	KindEnd:       "end",
	KindNew:       "new",
	KindDefine:    "define",
	KindExtends:   "extends",
	KindClass:     "class",
	KindEndClass:  "endclass",
	KindInt:       "int",
	KindEndFunc:   "endfunc",
	KindIf:        "if",
	KindThen:      " then",
	KindElse:      "else",
	KindWhile:     "while",
	KindEndWhile:  "endwhile",
	KindEndIf:     "endif",
	KindSemicolon: ";",
	KindLParen:    "(",
	KindRParen:    ")",
	KindComma:     ",",
	KindAssign:    "=",
	KindNegation:  "!",
	KindOr:        "or",
	KindEqual:     "==",
	KindLess:      "<",
	KindLessEqual: "<=",
	KindAdd:       "+",
	KindSub:       "-",
	KindMult:      "*",
	KindInput:     "input",
	KindOutput:    "output",
	KindConst:     "const",
	KindID:        "id",
}

// Literal returns the text the formatter renders for a token of kind k.
func (k Kind) Literal() string {
	if int(k) < len(literal) {
		return literal[k]
	}

	return k.String()
}

// MarshalText implements encoding.TextMarshaler using the kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// keywords maps reserved words to their kinds.
var keywords = map[string]Kind{
	"program":  KindProgram,
	"begin":    KindBegin,
	"end":      KindEnd,
	"new":      KindNew,
	"define":   KindDefine,
	"extends":  KindExtends,
	"class":    KindClass,
	"endclass": KindEndClass,
	"int":      KindInt,
	"endfunc":  KindEndFunc,
	"if":       KindIf,
	"then":     KindThen,
	"else":     KindElse,
	"while":    KindWhile,
	"endwhile": KindEndWhile,
	"endif":    KindEndIf,
	"or":       KindOr,
	"input":    KindInput,
	"output":   KindOutput,
}

// Position is a 1-based line and column in the source text.
type Position struct {
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// IsValid reports whether p refers to a real source location.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}

	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is an immutable lexical unit produced by a [Source].
type Token struct {
	Kind Kind
	// Attr is the identifier name for ID, the digits for CONST, and the
	// offending text for ERROR. It is empty for every other kind.
	Attr string
	Pos  Position
}

// Tok returns a token of kind k with optional attribute text.
func Tok(k Kind, attr ...string) Token {
	return Token{Kind: k, Attr: strings.Join(attr, "")}
}

// ID returns the identifier name if t is an ID token, or "" otherwise.
func (t Token) ID() string {
	if t.Kind != KindID {
		return ""
	}

	return t.Attr
}

// Const returns the constant literal if t is a CONST token, or "" otherwise.
func (t Token) Const() string {
	if t.Kind != KindConst {
		return ""
	}

	return t.Attr
}

// Text returns the text rendered for t.
func (t Token) Text() string {
	switch t.Kind {
	case KindID, KindConst:
		return t.Attr
	default:
		return t.Kind.Literal()
	}
}

func (t Token) String() string {
	switch t.Kind {
	case KindID, KindConst, KindError:
		return t.Kind.String() + "(" + strconv.Quote(t.Attr) + ")"
	default:
		return t.Kind.String()
	}
}

// kindSet is a small set of kinds used for lookahead dispatch and for
// reporting what a production expected.
type kindSet []Kind

func (s kindSet) has(k Kind) bool { return slices.Contains(s, k) }

func (s kindSet) String() string {
	names := make([]string, len(s))
	for i, k := range s {
		names[i] = k.String()
	}

	return strings.Join(names, ", ")
}
