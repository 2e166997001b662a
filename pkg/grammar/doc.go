// Package grammar is the general-purpose SQL grammar used by the formatter.
//
// It is built with participle: a case-insensitive lexer (lexer.go), a struct-tag
// grammar (sql.go) and a lowering pass (lower.go) that turns the participle parse
// tree into the closed variant types of pkg/ast.
//
// The grammar deliberately knows nothing about the dialect extensions handled by
// the placeholder codec. ARRAY and OBJECT are reserved words that cannot be used
// as column types, there is no OR REPLACE, and there is no array subscript. Text
// using those constructs must be rewritten before it is handed to Astify.
//
// Usage:
//
//	g := grammar.MustNew()
//	stmts, err := g.Astify("SELECT a, b FROM t WHERE a = 1;")
//	if err != nil {
//		return err
//	}
//
// Tokenize exposes the same lexer so other packages can make token-accurate
// decisions (string literals and comments are single tokens):
//
//	tokens, _ := grammar.Tokenize("SELECT 'a;b' -- c;")
package grammar
