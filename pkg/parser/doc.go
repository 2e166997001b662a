// Package parser splits SQL input into statements and drives the parse pipeline
// for each of them:
//
//	text → Split → leading comments → GRANT? → grant.Parse
//	                                 → codec.Rewrite → grammar.Astify → restore.Apply
//
// The result is a Document holding the statements in source order together with
// the original text and its span.
//
// A Parser is built around an explicitly constructed grammar and can be shared:
//
//	p := parser.New(grammar.MustNew(), parser.WithLogger(logger))
//	doc, err := p.Parse(sql)
//	if err != nil {
//		var stmtErr *parser.StatementError
//		if errors.As(err, &stmtErr) {
//			fmt.Println("bad statement:", stmtErr.Statement)
//		}
//	}
package parser
