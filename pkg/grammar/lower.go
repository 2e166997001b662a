package grammar

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
)

// aggregates have a single argument slot rather than a flat argument list.
var aggregates = map[string]bool{
	"AVG":   true,
	"COUNT": true,
	"MAX":   true,
	"MIN":   true,
	"SUM":   true,
}

func lowerStatement(s *statement) ast.Statement {
	switch {
	case s.Select != nil:
		return lowerSelect(s.Select)
	case s.Insert != nil:
		return lowerInsert(s.Insert)
	case s.CreateTable != nil:
		return lowerCreateTable(s.CreateTable)
	case s.CreateView != nil:
		return &ast.Create{
			Kind:        ast.KindView,
			IfNotExists: s.CreateView.IfNotExists,
			Name:        qualified(s.CreateView.Name),
			Query:       lowerSelect(s.CreateView.Query),
		}
	default:
		return &ast.Opaque{
			Kind: strings.ToUpper(s.Other.Verb),
			Text: strings.TrimSpace(s.Other.Verb + " " + strings.Join(s.Other.Tokens, " ")),
		}
	}
}

func lowerSelect(s *selectStmt) *ast.Select {
	if s == nil {
		return nil
	}

	sel := &ast.Select{Distinct: s.Distinct}
	for _, c := range s.With {
		sel.With = append(sel.With, &ast.CTE{Name: c.Name, Columns: c.Columns, Query: lowerSelect(c.Query)})
	}

	for _, item := range s.Columns {
		if item.Star {
			sel.Columns = append(sel.Columns, &ast.SelectItem{Expr: &ast.Star{}})
			continue
		}
		sel.Columns = append(sel.Columns, &ast.SelectItem{Expr: lowerExpr(item.Expr), Alias: item.Alias})
	}

	if s.From != nil {
		for _, t := range s.From.Tables {
			sel.From = append(sel.From, lowerTable(t))
		}
		for _, j := range s.From.Joins {
			sel.From = append(sel.From, lowerJoin(j))
		}
	}

	sel.Where = lowerExpr(s.Where)
	if s.GroupBy != nil {
		sel.GroupBy = &ast.GroupBy{All: s.GroupBy.All, Items: lowerExprs(s.GroupBy.Items)}
	}
	sel.Having = lowerExpr(s.Having)
	sel.Qualify = lowerExpr(s.Qualify)
	sel.OrderBy = lowerOrder(s.OrderBy)

	if s.Limit != nil {
		sel.Limit = &ast.Limit{Count: s.Limit.Count, Offset: s.Limit.Offset}
	}

	if s.SetOp != nil {
		op := "UNION"
		if s.SetOp.All {
			op = "UNION ALL"
		}
		sel.SetOp = &ast.SetOp{Op: op, Query: lowerSelect(s.SetOp.Query)}
	}

	return sel
}

func lowerTable(t *tableRef) *ast.TableRef {
	ref := &ast.TableRef{
		Name:     qualified(t.Name),
		Subquery: lowerSelect(t.Subquery),
		Alias:    t.Alias,
	}

	if t.Pivot != nil {
		ref.Pivot = &ast.Pivot{
			Aggregate: lowerExpr(t.Pivot.Aggregate),
			For:       t.Pivot.For,
			In:        lowerExprs(t.Pivot.In),
		}
	}

	if t.Unpivot != nil {
		ref.Unpivot = &ast.Unpivot{Value: t.Unpivot.Value, For: t.Unpivot.For, Columns: t.Unpivot.Columns}
	}

	return ref
}

func lowerJoin(j *join) *ast.TableRef {
	ref := lowerTable(j.Table)

	var kw []string
	if j.Kind != "" {
		kw = append(kw, strings.ToUpper(j.Kind))
	}
	if j.Outer {
		kw = append(kw, "OUTER")
	}
	ref.Join = strings.Join(append(kw, "JOIN"), " ")
	ref.On = lowerExpr(j.On)
	ref.Using = j.Using

	return ref
}

func lowerOrder(items []*orderItem) []*ast.OrderItem {
	var out []*ast.OrderItem
	for _, o := range items {
		out = append(out, &ast.OrderItem{
			Expr:      lowerExpr(o.Expr),
			Direction: strings.ToUpper(o.Direction),
			Nulls:     strings.ToUpper(o.Nulls),
		})
	}
	return out
}

func lowerInsert(s *insertStmt) *ast.Insert {
	ins := &ast.Insert{
		Table:   qualified(s.Table),
		Columns: s.Columns,
		Query:   lowerSelect(s.Query),
	}

	for _, row := range s.Values {
		ins.Values = append(ins.Values, lowerExprs(row.Values))
	}

	return ins
}

func lowerCreateTable(s *createTableStmt) *ast.Create {
	create := &ast.Create{
		Kind:        ast.KindTable,
		IfNotExists: s.IfNotExists,
		Name:        qualified(s.Name),
	}

	for _, c := range s.Columns {
		col := &ast.ColumnDef{
			Name:       c.Name,
			Type:       lowerType(c.Type),
			NotNull:    c.NotNull,
			Default:    lowerExpr(c.Default),
			PrimaryKey: c.PrimaryKey,
		}
		if c.References != nil {
			col.References = &ast.ForeignKey{Table: qualified(c.References.Table), Column: c.References.Column}
		}
		create.Columns = append(create.Columns, col)
	}

	return create
}

func lowerType(t *dataType) ast.DataType {
	return ast.DataType{Name: t.Name, Length: t.Length, Scale: t.Scale}
}

func lowerExprs(exprs []*expression) []ast.Expr {
	var out []ast.Expr
	for _, e := range exprs {
		out = append(out, lowerExpr(e))
	}
	return out
}

// lowerExpr folds each precedence layer into left-associative binary nodes.
func lowerExpr(e *expression) ast.Expr {
	if e == nil {
		return nil
	}

	out := lowerAnd(e.Left)
	for _, r := range e.Rest {
		out = &ast.Binary{Op: "OR", Left: out, Right: lowerAnd(r)}
	}
	return out
}

func lowerAnd(e *andExpr) ast.Expr {
	out := lowerNot(e.Left)
	for _, r := range e.Rest {
		out = &ast.Binary{Op: "AND", Left: out, Right: lowerNot(r)}
	}
	return out
}

func lowerNot(e *notExpr) ast.Expr {
	if e.Not != nil {
		return &ast.Unary{Op: "NOT", Operand: lowerNot(e.Not)}
	}
	return lowerComparison(e.Cmp)
}

func lowerComparison(c *comparison) ast.Expr {
	left := lowerAdditive(c.Left)
	t := c.Tail
	if t == nil {
		return left
	}

	switch {
	case t.Compare != nil:
		return &ast.Binary{Op: t.Compare.Op, Left: left, Right: lowerAdditive(t.Compare.Right)}
	case t.Is != nil:
		return &ast.IsNull{Operand: left, Not: t.Is.Not}
	case t.Like != nil:
		op := strings.ToUpper(t.Like.Op)
		if t.Like.Not {
			op = "NOT " + op
		}
		return &ast.Binary{Op: op, Left: left, Right: lowerAdditive(t.Like.Right)}
	case t.In != nil:
		return &ast.In{Operand: left, Not: t.In.Not, List: lowerExprs(t.In.List), Query: lowerSelect(t.In.Query)}
	default:
		return &ast.Between{
			Operand: left,
			Not:     t.Between.Not,
			Low:     lowerAdditive(t.Between.Low),
			High:    lowerAdditive(t.Between.High),
		}
	}
}

func lowerAdditive(a *additive) ast.Expr {
	out := lowerMultiplicative(a.Left)
	for _, r := range a.Rest {
		out = &ast.Binary{Op: r.Op, Left: out, Right: lowerMultiplicative(r.Right)}
	}
	return out
}

func lowerMultiplicative(m *multiplicative) ast.Expr {
	out := lowerUnary(m.Left)
	for _, r := range m.Rest {
		out = &ast.Binary{Op: r.Op, Left: out, Right: lowerUnary(r.Right)}
	}
	return out
}

func lowerUnary(u *unary) ast.Expr {
	out := lowerPrimary(u.Operand.Primary)
	for _, t := range u.Operand.Casts {
		out = &ast.Cast{Operand: out, Type: lowerType(t), Shorthand: true}
	}

	if u.Op != "" {
		return &ast.Unary{Op: u.Op, Operand: out}
	}
	return out
}

func lowerPrimary(p *primary) ast.Expr {
	switch {
	case p.Literal != nil:
		return lowerLiteral(p.Literal)
	case p.Case != nil:
		c := &ast.Case{Operand: lowerExpr(p.Case.Operand), Else: lowerExpr(p.Case.Else)}
		for _, w := range p.Case.Whens {
			c.Whens = append(c.Whens, &ast.When{Cond: lowerExpr(w.Cond), Result: lowerExpr(w.Result)})
		}
		return c
	case p.Cast != nil:
		return &ast.Cast{Operand: lowerExpr(p.Cast.Expr), Type: lowerType(p.Cast.Type)}
	case p.Exists != nil:
		return &ast.Exists{Query: lowerSelect(p.Exists)}
	case p.Subquery != nil:
		return &ast.Subquery{Query: lowerSelect(p.Subquery)}
	case p.Paren != nil:
		return &ast.Paren{Inner: lowerExpr(p.Paren)}
	default:
		return lowerReference(p.Ref)
	}
}

func lowerLiteral(l *literal) *ast.Literal {
	switch {
	case l.Number != nil:
		return &ast.Literal{Kind: ast.NumberLiteral, Value: *l.Number}
	case l.String != nil:
		return &ast.Literal{Kind: ast.StringLiteral, Value: *l.String}
	case l.Bool != nil:
		return &ast.Literal{Kind: ast.BoolLiteral, Value: strings.ToUpper(*l.Bool)}
	default:
		return &ast.Literal{Kind: ast.NullLiteral, Value: "NULL"}
	}
}

func lowerReference(r *reference) ast.Expr {
	if r.Call != nil {
		return lowerCall(qualified(r.Parts), r.Call)
	}

	if r.Star {
		return &ast.Star{Qualifier: qualified(r.Parts)}
	}

	n := len(r.Parts)
	return &ast.ColumnRef{Qualifier: qualified(r.Parts[:n-1]), Name: r.Parts[n-1]}
}

func lowerCall(name string, c *call) ast.Expr {
	args := lowerExprs(c.Args)
	if c.Star {
		args = []ast.Expr{&ast.Star{}}
	}

	var over *ast.Window
	if c.Over != nil {
		over = &ast.Window{PartitionBy: lowerExprs(c.Over.PartitionBy), OrderBy: lowerOrder(c.Over.OrderBy)}
	}

	if aggregates[strings.ToUpper(name)] && len(args) == 1 {
		return &ast.AggregateCall{Name: name, Distinct: c.Distinct, Arg: args[0], Over: over}
	}

	return &ast.FunctionCall{Name: name, Distinct: c.Distinct, Args: args, Over: over}
}

func qualified(parts []string) string {
	return strings.Join(parts, ".")
}
