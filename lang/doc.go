// Package lang validates and reformats programs written in Core, a small
// imperative teaching language.
//
// A single top-down pass over the token stream checks the grammar, enforces
// declaration scope, and renders the accepted program with canonical spacing
// and indentation. There is no syntax tree; every decision is made as a token
// is accepted.
//
// # Grammar
//
//	program    → PROGRAM decl-seq? BEGIN stmt-seq END
//	decl-seq   → decl+                      (until BEGIN)
//	decl       → INT id-list SEMICOLON
//	id-list    → (COMMA | ID)*
//	stmt-seq   → stmt+ | ε                  (empty only before END)
//	stmt       → assign | if-seq | loop | input | output | decl | BEGIN
//	assign     → ID ASSIGN expr SEMICOLON
//	if-seq     → IF cond THEN stmt-seq ENDIF
//	           | ELSE stmt-seq              (closed by the enclosing ENDIF)
//	loop       → WHILE cond BEGIN stmt-seq ENDWHILE
//	input      → INPUT ID SEMICOLON
//	output     → OUTPUT expr SEMICOLON
//	cond       → NEGATION cond-paren | OR cond | cmpr
//	cmpr       → expr (EQUAL | LESS | LESSEQUAL) expr
//	expr       → term ((ADD | SUB) expr)?
//	term       → factor (MULT term)?
//	factor     → ID | CONST | expr-paren
//	cond-paren → LPAREN cond cond-paren? RPAREN
//	expr-paren → LPAREN expr cond-paren? RPAREN
//
// Binary operators associate to the right.
//
// # Scope
//
// Identifiers are declared with int. Declaring a visible name again, or using
// a name that is not visible, aborts the parse. Names declared inside an if,
// else, or while body are discarded when the body closes.
//
// # Layout
//
// Every token kind has a fixed spacing policy:
//
//   - PROGRAM BEGIN END SEMICOLON ENDIF ENDWHILE THEN ELSE end the line.
//   - ID CONST and the operators and punctuation are written tightly.
//   - Every other keyword is followed by one space.
//
// Lines are indented one level inside the program body and inside each if,
// else, and while body. For example:
//
//	program
//		int x;
//	begin
//		input x;
//		while x<10 begin
//			x=x+1;
//		endwhile
//		output x;
//	end
//
// # Errors
//
// Failures are returned as [*Error] values that match [ErrSyntax],
// [ErrDuplicateDecl], [ErrUndeclared], [ErrTrailing], [ErrReadInput], or
// [ErrWriteOutput] with errors.Is, and carry the offending source position.
package lang
