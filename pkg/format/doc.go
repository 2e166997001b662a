// Package format renders parsed SQL documents in a fixed Snowflake layout.
//
// Every statement kind has exactly one layout. Keywords are upper-cased,
// identifiers and literals are written as they were parsed:
//
//   - SELECT lists put the first column on the SELECT line and continue with
//     leading-comma lines ("     , col").
//   - FROM, WHERE, GROUP BY, HAVING, QUALIFY, ORDER BY and LIMIT start lines of
//     their own. AND/OR chains in filters continue on indented lines.
//   - CTE bodies and subqueries are indented inside their parentheses.
//   - CREATE TABLE puts each column on its own line with leading commas.
//   - Every statement ends with ";" on a line of its own, except GRANT.
//
// Usage:
//
//	p := parser.New(grammar.MustNew())
//	doc, err := p.Parse("select a, b from t where x = 1 and y = 2;")
//	if err != nil {
//		return err
//	}
//
//	var buf bytes.Buffer
//	err = format.Format(&buf, format.Defaults, doc)
//
// Output:
//
//	SELECT a
//	     , b
//	FROM t
//	WHERE x = 1
//	  AND y = 2
//	;
//
// Statements the formatter has no layout for (ALTER, DROP, USE, ...) are
// dropped from the output, or rejected with an *UnsupportedStatementError when
// Strict is set.
package format
