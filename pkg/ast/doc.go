// Package ast defines the syntax tree consumed by the formatter.
//
// The tree is a closed set of variants. Every statement implements Statement and
// every expression implements Expr; both interfaces are sealed with unexported
// marker methods so a type switch over the known variants is exhaustive. Anything
// the grammar accepts but the formatter has no renderer for is carried as an
// *Opaque statement rather than being inspected field by field.
//
// The package also holds the restoration records produced by the placeholder codec
// (CustomType, ReplaceMarker and ArrayAccess). They live here because statements
// carry them after restoration:
//
//	stmts, _ := g.Astify("CREATE TABLE t (tags VARCHAR)")
//	create := stmts[0].(*ast.Create)
//	create.Columns[0].Type.Name // "VARCHAR"
package ast
