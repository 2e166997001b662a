package format

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/codec"
	"github.com/pseudomuto/flakefmt/pkg/doc"
)

// expr formats an expression inline. Only subqueries introduce line breaks.
func (p *printer) expr(e ast.Expr) doc.Doc {
	switch e := e.(type) {
	case nil:
		return nil
	case *ast.ColumnRef:
		name := e.Name
		if e.Qualifier != "" {
			name = e.Qualifier + "." + e.Name
		}
		return doc.Text(codec.Expand(name, p.access))
	case *ast.Star:
		if e.Qualifier != "" {
			return doc.Text(e.Qualifier + ".*")
		}
		return doc.Text("*")
	case *ast.Literal:
		return doc.Text(e.Value)
	case *ast.FunctionCall:
		return p.call(e.Name, e.Distinct, e.Args, e.Over)
	case *ast.AggregateCall:
		return p.call(e.Name, e.Distinct, []ast.Expr{e.Arg}, e.Over)
	case *ast.Binary:
		return doc.Concat(p.expr(e.Left), doc.Text(" "+e.Op+" "), p.expr(e.Right))
	case *ast.Unary:
		if e.Op == "NOT" {
			return doc.Concat(doc.Text("NOT "), p.expr(e.Operand))
		}
		return doc.Concat(doc.Text(e.Op), p.expr(e.Operand))
	case *ast.Paren:
		return doc.Concat(doc.Text("("), p.expr(e.Inner), doc.Text(")"))
	case *ast.IsNull:
		if e.Not {
			return doc.Concat(p.expr(e.Operand), doc.Text(" IS NOT NULL"))
		}
		return doc.Concat(p.expr(e.Operand), doc.Text(" IS NULL"))
	case *ast.In:
		return p.in(e)
	case *ast.Between:
		op := " BETWEEN "
		if e.Not {
			op = " NOT BETWEEN "
		}
		return doc.Concat(p.expr(e.Operand), doc.Text(op), p.expr(e.Low), doc.Text(" AND "), p.expr(e.High))
	case *ast.Case:
		return p.caseExpr(e)
	case *ast.Cast:
		if e.Shorthand {
			return doc.Concat(p.expr(e.Operand), doc.Text("::"+typeName(e.Type)))
		}
		return doc.Concat(doc.Text("CAST("), p.expr(e.Operand), doc.Text(" AS "+typeName(e.Type)+")"))
	case *ast.Exists:
		return doc.Concat(doc.Text("EXISTS "), p.subquery(e.Query))
	case *ast.Subquery:
		return p.subquery(e.Query)
	default:
		return nil
	}
}

func (p *printer) exprList(exprs []ast.Expr) doc.Doc {
	docs := make([]doc.Doc, 0, len(exprs))
	for _, e := range exprs {
		docs = append(docs, p.expr(e))
	}
	return doc.Join(doc.Text(", "), docs)
}

// call formats a function call with an upper-cased name.
func (p *printer) call(name string, distinct bool, args []ast.Expr, over *ast.Window) doc.Doc {
	parts := []doc.Doc{doc.Text(strings.ToUpper(name) + "(")}
	if distinct {
		parts = append(parts, doc.Text("DISTINCT "))
	}
	parts = append(parts, p.exprList(args), doc.Text(")"))

	if over != nil {
		parts = append(parts, p.window(over))
	}

	return doc.Concat(parts...)
}

func (p *printer) window(w *ast.Window) doc.Doc {
	var clauses []doc.Doc
	if len(w.PartitionBy) > 0 {
		clauses = append(clauses, doc.Concat(doc.Text("PARTITION BY "), p.exprList(w.PartitionBy)))
	}
	if len(w.OrderBy) > 0 {
		clauses = append(clauses, doc.Concat(doc.Text("ORDER BY "), p.orderItems(w.OrderBy)))
	}

	return doc.Concat(doc.Text(" OVER ("), doc.Join(doc.Text(" "), clauses), doc.Text(")"))
}

func (p *printer) in(e *ast.In) doc.Doc {
	op := " IN "
	if e.Not {
		op = " NOT IN "
	}

	if e.Query != nil {
		return doc.Concat(p.expr(e.Operand), doc.Text(op), p.subquery(e.Query))
	}

	return doc.Concat(p.expr(e.Operand), doc.Text(op+"("), p.exprList(e.List), doc.Text(")"))
}

func (p *printer) caseExpr(e *ast.Case) doc.Doc {
	parts := []doc.Doc{doc.Text("CASE")}
	if e.Operand != nil {
		parts = append(parts, doc.Text(" "), p.expr(e.Operand))
	}

	for _, w := range e.Whens {
		parts = append(parts,
			doc.Text(" WHEN "), p.expr(w.Cond),
			doc.Text(" THEN "), p.expr(w.Result),
		)
	}

	if e.Else != nil {
		parts = append(parts, doc.Text(" ELSE "), p.expr(e.Else))
	}

	return doc.Concat(append(parts, doc.Text(" END"))...)
}

// typeName formats a data type. Quoted type names are kept as written.
func typeName(t ast.DataType) string {
	name := t.Name
	if !strings.HasPrefix(name, `"`) {
		name = strings.ToUpper(name)
	}

	switch {
	case t.Length != "" && t.Scale != "":
		return name + "(" + t.Length + "," + t.Scale + ")"
	case t.Length != "":
		return name + "(" + t.Length + ")"
	default:
		return name
	}
}
