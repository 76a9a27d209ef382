package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/corefmt/log"
)

var (
	// stmtStarters are the kinds that may begin a statement.
	stmtStarters = kindSet{
		KindID, KindIf, KindElse, KindWhile,
		KindBegin, KindInput, KindOutput, KindInt,
	}
	cmprOperators = kindSet{KindEqual, KindLess, KindLessEqual}
	factorStarts  = kindSet{KindID, KindConst, KindLParen}
)

// Parse validates the program supplied by src and writes its canonical
// rendering to w in a single pass.
//
// The first grammar or scope violation aborts the parse and is returned as
// an [*Error] matching one of the package sentinels. Output rendered before
// the violation is left in w.
func Parse(ctx context.Context, src Source, w io.Writer, opts ...Option) error {
	p := newParser(ctx, src, w, makeOptions(opts...))

	p.logger.TraceContext(ctx, "parse start")

	if err := p.parseProgram(); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "parse complete",
		slog.Int("token_count", p.count),
		slog.Any("scope", p.scope))

	return nil
}

// parser holds the parser state.
type parser struct {
	ctx    context.Context //nolint:containedctx // scoped to a single Parse call
	src    Source
	scope  *Scope
	out    *Formatter
	logger log.Logger
	count  int
}

func newParser(ctx context.Context, src Source, w io.Writer, o options) *parser {
	return &parser{
		ctx:    ctx,
		src:    src,
		scope:  NewScope(),
		out:    newFormatter(w, o),
		logger: o.logger,
	}
}

// parseProgram parses: PROGRAM [decl-seq] BEGIN stmt-seq END EOF.
func (p *parser) parseProgram() error {
	if err := p.expect(KindProgram); err != nil {
		return err
	}

	// Declarations and statements of the program body sit one level deep.
	p.out.Indent()

	if p.at(KindInt) {
		if err := p.parseDeclSeq(); err != nil {
			return err
		}
	}

	if err := p.expect(KindBegin); err != nil {
		return err
	}

	if err := p.parseStmtSeq(); err != nil {
		return err
	}

	if err := p.expect(KindEnd); err != nil {
		return err
	}

	if tok := p.src.Current(); tok.Kind != KindEOF {
		return ErrTrailing.At(tok.Pos).
			Explain("token " + tok.String() + " follows end of program").
			With(slog.String("token", tok.String()))
	}

	return nil
}

// parseDeclSeq parses declarations until the lookahead is BEGIN.
func (p *parser) parseDeclSeq() error {
	for {
		if err := p.parseDecl(); err != nil {
			return err
		}

		if p.at(KindBegin) {
			return nil
		}
	}
}

// parseDecl parses: INT id-list SEMICOLON.
func (p *parser) parseDecl() error {
	if err := p.expect(KindInt); err != nil {
		return err
	}

	if tok := p.src.Current(); tok.Kind != KindID {
		return p.mismatch(tok, kindSet{KindID})
	}

	if err := p.parseIDList(); err != nil {
		return err
	}

	return p.expect(KindSemicolon)
}

// parseIDList declares each ID in a run of IDs and commas.
func (p *parser) parseIDList() error {
	for {
		tok := p.src.Current()

		switch tok.Kind {
		case KindComma:
			if err := p.accept(tok); err != nil {
				return err
			}

		case KindID:
			if err := p.declare(tok); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// parseStmtSeq parses statements while the lookahead can start one.
// The sequence is empty only when the lookahead is END.
func (p *parser) parseStmtSeq() error {
	if p.at(KindEnd) {
		return nil
	}

	for {
		if err := p.parseStmt(); err != nil {
			return err
		}

		if !stmtStarters.has(p.src.Current().Kind) {
			return nil
		}
	}
}

func (p *parser) parseStmt() error {
	tok := p.src.Current()

	switch tok.Kind {
	case KindID:
		return p.parseAssign()
	case KindIf, KindElse:
		return p.parseIfSeq()
	case KindWhile:
		return p.parseLoop()
	case KindInput:
		return p.parseInput()
	case KindOutput:
		return p.parseOutput()
	case KindInt:
		return p.parseDecl()
	case KindBegin:
		// A stray BEGIN is tolerated as an empty statement.
		return p.accept(tok)
	default:
		return p.mismatch(tok, stmtStarters)
	}
}

// parseAssign parses: ID ASSIGN expr SEMICOLON.
func (p *parser) parseAssign() error {
	name, err := p.reference()
	if err != nil {
		return err
	}

	p.scope.Assign(name)

	if err := p.expect(KindAssign); err != nil {
		return err
	}

	if err := p.parseExpr(); err != nil {
		return err
	}

	return p.expect(KindSemicolon)
}

// parseIfSeq parses either IF cond THEN stmt-seq ENDIF or ELSE stmt-seq.
// An ELSE branch is parsed as a statement of the enclosing IF body and closes
// with that IF's ENDIF.
func (p *parser) parseIfSeq() error {
	tok := p.src.Current()

	if err := p.accept(tok); err != nil {
		return err
	}

	p.out.Indent()
	p.push()

	if tok.Kind == KindIf {
		if err := p.parseCond(); err != nil {
			return err
		}

		if err := p.expect(KindThen); err != nil {
			return err
		}
	}

	if err := p.parseStmtSeq(); err != nil {
		return err
	}

	if tok.Kind == KindIf {
		if err := p.expect(KindEndIf); err != nil {
			return err
		}
	}

	p.pop()

	return nil
}

// parseLoop parses: WHILE cond BEGIN stmt-seq ENDWHILE.
func (p *parser) parseLoop() error {
	if err := p.expect(KindWhile); err != nil {
		return err
	}

	p.out.Indent()
	p.push()

	if err := p.parseCond(); err != nil {
		return err
	}

	if err := p.expect(KindBegin); err != nil {
		return err
	}

	if err := p.parseStmtSeq(); err != nil {
		return err
	}

	if err := p.expect(KindEndWhile); err != nil {
		return err
	}

	p.pop()

	return nil
}

// parseInput parses: INPUT ID SEMICOLON.
func (p *parser) parseInput() error {
	if err := p.expect(KindInput); err != nil {
		return err
	}

	if _, err := p.reference(); err != nil {
		return err
	}

	return p.expect(KindSemicolon)
}

// parseOutput parses: OUTPUT expr SEMICOLON.
func (p *parser) parseOutput() error {
	if err := p.expect(KindOutput); err != nil {
		return err
	}

	if err := p.parseExpr(); err != nil {
		return err
	}

	return p.expect(KindSemicolon)
}

// parseCond parses: NEGATION cond-paren | OR cond | cmpr.
func (p *parser) parseCond() error {
	tok := p.src.Current()

	switch tok.Kind {
	case KindNegation:
		if err := p.accept(tok); err != nil {
			return err
		}

		return p.parseCondParen()

	case KindOr:
		if err := p.accept(tok); err != nil {
			return err
		}

		return p.parseCond()

	default:
		return p.parseCmpr()
	}
}

// parseCmpr parses: expr (EQUAL | LESS | LESSEQUAL) expr.
func (p *parser) parseCmpr() error {
	if err := p.parseExpr(); err != nil {
		return err
	}

	tok := p.src.Current()
	if !cmprOperators.has(tok.Kind) {
		return p.mismatch(tok, cmprOperators)
	}

	if err := p.accept(tok); err != nil {
		return err
	}

	return p.parseExpr()
}

// parseExpr parses: term ((ADD | SUB) expr)?
// The operators associate to the right.
func (p *parser) parseExpr() error {
	if err := p.parseTerm(); err != nil {
		return err
	}

	if tok := p.src.Current(); tok.Kind == KindAdd || tok.Kind == KindSub {
		if err := p.accept(tok); err != nil {
			return err
		}

		return p.parseExpr()
	}

	return nil
}

// parseTerm parses: factor (MULT term)?
func (p *parser) parseTerm() error {
	if err := p.parseFactor(); err != nil {
		return err
	}

	if tok := p.src.Current(); tok.Kind == KindMult {
		if err := p.accept(tok); err != nil {
			return err
		}

		return p.parseTerm()
	}

	return nil
}

// parseFactor parses: ID | CONST | expr-paren.
func (p *parser) parseFactor() error {
	tok := p.src.Current()

	switch tok.Kind {
	case KindID:
		_, err := p.reference()

		return err
	case KindConst:
		return p.accept(tok)
	case KindLParen:
		return p.parseExprParen()
	default:
		return p.mismatch(tok, factorStarts)
	}
}

// parseCondParen parses: LPAREN cond cond-paren? RPAREN.
func (p *parser) parseCondParen() error {
	if err := p.expect(KindLParen); err != nil {
		return err
	}

	if err := p.parseCond(); err != nil {
		return err
	}

	if p.at(KindLParen) {
		if err := p.parseCondParen(); err != nil {
			return err
		}
	}

	return p.expect(KindRParen)
}

// parseExprParen parses: LPAREN expr cond-paren? RPAREN.
func (p *parser) parseExprParen() error {
	if err := p.expect(KindLParen); err != nil {
		return err
	}

	if err := p.parseExpr(); err != nil {
		return err
	}

	if p.at(KindLParen) {
		if err := p.parseCondParen(); err != nil {
			return err
		}
	}

	return p.expect(KindRParen)
}

// at reports whether the lookahead is of kind k.
func (p *parser) at(k Kind) bool { return p.src.Current().Kind == k }

// expect accepts the lookahead if it is of kind k.
func (p *parser) expect(k Kind) error {
	tok := p.src.Current()
	if tok.Kind != k {
		return p.mismatch(tok, kindSet{k})
	}

	return p.accept(tok)
}

// accept renders tok, which must be the lookahead, and advances past it.
func (p *parser) accept(tok Token) error {
	p.logger.TraceContext(p.ctx, "accept",
		slog.String("token", tok.String()),
		slog.String("pos", tok.Pos.String()),
		slog.Int("depth", p.out.Depth()))

	if err := p.out.Render(tok); err != nil {
		return err
	}

	p.count++
	p.src.Advance()

	return nil
}

// declare adds the identifier tok to the innermost scope frame and accepts it.
func (p *parser) declare(tok Token) error {
	name := tok.ID()

	if p.scope.Declared(name) {
		return ErrDuplicateDecl.At(tok.Pos).
			Explain("variable " + name + " was declared multiple times").
			With(slog.String("identifier", name))
	}

	p.scope.Declare(name)

	return p.accept(tok)
}

// reference accepts the lookahead as a use of a visible identifier and
// returns its name.
func (p *parser) reference() (string, error) {
	tok := p.src.Current()
	if tok.Kind != KindID {
		return "", p.mismatch(tok, kindSet{KindID})
	}

	name := tok.ID()

	if !p.scope.Declared(name) {
		detail := "variable " + name + " not declared in scope"
		attrs := []slog.Attr{slog.String("identifier", name)}

		if hint := suggest(name, p.scope.Names()); hint != "" {
			detail += " (did you mean " + hint + "?)"
			attrs = append(attrs, slog.String("suggestion", hint))
		}

		return "", ErrUndeclared.At(tok.Pos).Explain(detail).With(attrs...)
	}

	return name, p.accept(tok)
}

func (p *parser) push() {
	p.scope.Push()
	p.logger.DebugContext(p.ctx, "scope push", slog.Int("depth", p.scope.Depth()))
}

func (p *parser) pop() {
	p.scope.Pop()
	p.logger.DebugContext(p.ctx, "scope pop", slog.Int("depth", p.scope.Depth()))
}

// mismatch reports that tok is not one of the kinds a production expected.
func (p *parser) mismatch(tok Token, want kindSet) error {
	detail := "token " + tok.String() + " was invalidly placed, expected "
	if len(want) == 1 {
		detail += want.String()
	} else {
		detail += "one of {" + want.String() + "}"
	}

	return ErrSyntax.At(tok.Pos).
		Explain(detail).
		With(slog.String("token", tok.String()), slog.String("expected", want.String()))
}

// suggest returns the visible name that best matches an unknown identifier,
// or "" if none is close.
func suggest(name string, names []string) string {
	if len(names) == 0 || name == "" {
		return ""
	}

	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return matches[0].Str
	}

	// The unknown name may have extra characters, so also look for a
	// visible name contained in it.
	best := ""

	for _, n := range names {
		if len(fuzzy.Find(n, []string{name})) > 0 && len(n) > len(best) {
			best = n
		}
	}

	// A single-letter name matches too much to be a useful hint.
	if len(best) < 2 {
		return ""
	}

	return best
}
