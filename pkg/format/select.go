package format

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/doc"
)

// continuation prefixes every select column and VALUES row after the first.
const continuation = "     , "

// boolOperand is a right-hand operand of a flattened AND/OR chain.
type boolOperand struct {
	op   string
	expr ast.Expr
}

// query formats a SELECT without its terminator. Nested queries (CTE bodies,
// subqueries, INSERT and VIEW sources) use it directly.
func (p *printer) query(s *ast.Select) doc.Doc {
	if s == nil {
		return nil
	}

	var lines []doc.Doc

	// WITH clause (CTEs)
	if len(s.With) > 0 {
		lines = append(lines, p.with(s.With))
	}

	lines = append(lines, p.selectList(s))

	if from := p.from(s.From); from != nil {
		lines = append(lines, from)
	}
	for _, t := range s.From {
		if t.IsJoin() {
			lines = append(lines, p.join(t))
		}
	}

	if s.Where != nil {
		lines = append(lines, p.condition("WHERE", s.Where))
	}

	if s.GroupBy != nil {
		lines = append(lines, p.groupBy(s.GroupBy))
	}

	if s.Having != nil {
		lines = append(lines, p.condition("HAVING", s.Having))
	}

	if s.Qualify != nil {
		lines = append(lines, p.condition("QUALIFY", s.Qualify))
	}

	if len(s.OrderBy) > 0 {
		lines = append(lines, doc.Concat(doc.Text("ORDER BY "), p.orderItems(s.OrderBy)))
	}

	if s.Limit != nil {
		limit := "LIMIT " + s.Limit.Count
		if s.Limit.Offset != "" {
			limit += " OFFSET " + s.Limit.Offset
		}
		lines = append(lines, doc.Text(limit))
	}

	if s.SetOp != nil {
		lines = append(lines, doc.Text(s.SetOp.Op), p.query(s.SetOp.Query))
	}

	return doc.Join(doc.HardLine, lines)
}

func (p *printer) with(ctes []*ast.CTE) doc.Doc {
	docs := make([]doc.Doc, 0, len(ctes))
	for i, cte := range ctes {
		prefix := "WITH "
		if i > 0 {
			prefix = ", "
		}

		name := cte.Name
		if len(cte.Columns) > 0 {
			name += " (" + strings.Join(cte.Columns, ", ") + ")"
		}

		docs = append(docs, doc.Concat(
			doc.Text(prefix+name+" AS "),
			p.subquery(cte.Query),
		))
	}

	return doc.Join(doc.HardLine, docs)
}

// selectList puts the first column on the SELECT line and the rest on
// leading-comma lines.
func (p *printer) selectList(s *ast.Select) doc.Doc {
	head := "SELECT "
	if s.Distinct {
		head = "SELECT DISTINCT "
	}

	docs := make([]doc.Doc, 0, len(s.Columns))
	for i, item := range s.Columns {
		prefix := continuation
		if i == 0 {
			prefix = head
		}

		col := p.expr(item.Expr)
		if item.Alias != "" {
			col = doc.Concat(col, doc.Text(" AS "+item.Alias))
		}

		docs = append(docs, doc.Concat(doc.Text(prefix), col))
	}

	return doc.Join(doc.HardLine, docs)
}

// from formats the plain tables of a FROM list. Join entries get their own
// lines.
func (p *printer) from(refs []*ast.TableRef) doc.Doc {
	var tables []doc.Doc
	for _, t := range refs {
		if !t.IsJoin() {
			tables = append(tables, p.table(t))
		}
	}

	if len(tables) == 0 {
		return nil
	}

	return doc.Concat(doc.Text("FROM "), doc.Join(doc.Text(", "), tables))
}

func (p *printer) join(t *ast.TableRef) doc.Doc {
	parts := []doc.Doc{doc.Text(t.Join + " "), p.table(t)}

	switch {
	case t.On != nil:
		parts = append(parts, doc.Text(" ON "), p.expr(t.On))
	case len(t.Using) > 0:
		parts = append(parts, doc.Text(" USING("+strings.Join(t.Using, ", ")+")"))
	}

	return doc.Concat(parts...)
}

func (p *printer) table(t *ast.TableRef) doc.Doc {
	var parts []doc.Doc
	if t.Subquery != nil {
		parts = append(parts, p.subquery(t.Subquery))
	} else {
		parts = append(parts, doc.Text(t.Name))
	}

	if t.Pivot != nil {
		parts = append(parts,
			doc.Text(" PIVOT("),
			p.expr(t.Pivot.Aggregate),
			doc.Text(" FOR "+t.Pivot.For+" IN ("),
			p.exprList(t.Pivot.In),
			doc.Text("))"),
		)
	}

	if t.Unpivot != nil {
		parts = append(parts, doc.Text(
			" UNPIVOT("+t.Unpivot.Value+" FOR "+t.Unpivot.For+" IN ("+strings.Join(t.Unpivot.Columns, ", ")+"))",
		))
	}

	if t.Alias != "" {
		parts = append(parts, doc.Text(" "+t.Alias))
	}

	return doc.Concat(parts...)
}

// condition formats a WHERE, HAVING or QUALIFY clause. A top-level AND/OR chain
// keeps its first operand on the keyword line and continues on indented lines.
func (p *printer) condition(keyword string, e ast.Expr) doc.Doc {
	first, rest := flattenBool(e)

	parts := []doc.Doc{doc.Text(keyword + " "), p.expr(first)}
	for _, operand := range rest {
		parts = append(parts, doc.Indent(doc.Concat(
			doc.HardLine,
			doc.Text(operand.op+" "),
			p.expr(operand.expr),
		)))
	}

	return doc.Concat(parts...)
}

// flattenBool walks the left spine of an AND/OR chain.
func flattenBool(e ast.Expr) (ast.Expr, []boolOperand) {
	if !ast.BooleanOp(e) {
		return e, nil
	}

	b := e.(*ast.Binary)
	first, rest := flattenBool(b.Left)
	return first, append(rest, boolOperand{op: b.Op, expr: b.Right})
}

func (p *printer) groupBy(g *ast.GroupBy) doc.Doc {
	if g.All {
		return doc.Text("GROUP BY ALL")
	}
	return doc.Concat(doc.Text("GROUP BY "), p.exprList(g.Items))
}

func (p *printer) orderItems(items []*ast.OrderItem) doc.Doc {
	docs := make([]doc.Doc, 0, len(items))
	for _, item := range items {
		parts := []doc.Doc{p.expr(item.Expr)}
		if item.Direction != "" {
			parts = append(parts, doc.Text(" "+item.Direction))
		}
		if item.Nulls != "" {
			parts = append(parts, doc.Text(" NULLS "+item.Nulls))
		}
		docs = append(docs, doc.Concat(parts...))
	}

	return doc.Join(doc.Text(", "), docs)
}

// subquery formats a parenthesized query with an indented body.
func (p *printer) subquery(s *ast.Select) doc.Doc {
	return doc.Concat(
		doc.Text("("),
		doc.Indent(doc.Concat(doc.HardLine, p.query(s))),
		doc.HardLine,
		doc.Text(")"),
	)
}
