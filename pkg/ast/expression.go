package ast

type (
	// Expr is a scalar expression.
	Expr interface {
		Node
		exprNode()
	}

	// LiteralKind distinguishes literal values.
	LiteralKind int

	// ColumnRef is a possibly qualified column reference. Array-access
	// placeholders also arrive as column references.
	ColumnRef struct {
		Qualifier string
		Name      string
	}

	// Star is "*" or "<qualifier>.*".
	Star struct {
		Qualifier string
	}

	// Literal is a number, string, boolean or NULL kept as written.
	Literal struct {
		Kind  LiteralKind
		Value string
	}

	// FunctionCall is a call with a flat argument list.
	FunctionCall struct {
		Name     string
		Distinct bool
		Args     []Expr
		Over     *Window
	}

	// AggregateCall is an aggregate with a single argument slot, which may be a
	// *Star.
	AggregateCall struct {
		Name     string
		Distinct bool
		Arg      Expr
		Over     *Window
	}

	// Window is an OVER clause.
	Window struct {
		PartitionBy []Expr
		OrderBy     []*OrderItem
	}

	// Binary is a binary operation. Op holds the operator as it should be printed:
	// symbols verbatim, keywords upper-cased (AND, OR, LIKE, NOT ILIKE, ...).
	Binary struct {
		Op    string
		Left  Expr
		Right Expr
	}

	// Unary is a prefix operation (NOT, -, +).
	Unary struct {
		Op      string
		Operand Expr
	}

	// Paren is an explicitly parenthesized expression.
	Paren struct {
		Inner Expr
	}

	IsNull struct {
		Operand Expr
		Not     bool
	}

	// In is "<operand> [NOT] IN (...)" against either a list or a subquery.
	In struct {
		Operand Expr
		Not     bool
		List    []Expr
		Query   *Select
	}

	Between struct {
		Operand Expr
		Not     bool
		Low     Expr
		High    Expr
	}

	// Case is a simple (Operand set) or searched CASE expression.
	Case struct {
		Operand Expr
		Whens   []*When
		Else    Expr
	}

	When struct {
		Cond   Expr
		Result Expr
	}

	// Cast is CAST(<operand> AS <type>), or <operand>::<type> when Shorthand is set.
	Cast struct {
		Operand   Expr
		Type      DataType
		Shorthand bool
	}

	Exists struct {
		Query *Select
	}

	// Subquery is a parenthesized query used as a value.
	Subquery struct {
		Query *Select
	}
)

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BoolLiteral
	NullLiteral
)

// BooleanOp reports whether the expression is an AND/OR operation.
func BooleanOp(e Expr) bool {
	b, ok := e.(*Binary)
	return ok && (b.Op == "AND" || b.Op == "OR")
}

func (*ColumnRef) node()     {}
func (*Star) node()          {}
func (*Literal) node()       {}
func (*FunctionCall) node()  {}
func (*AggregateCall) node() {}
func (*Binary) node()        {}
func (*Unary) node()         {}
func (*Paren) node()         {}
func (*IsNull) node()        {}
func (*In) node()            {}
func (*Between) node()       {}
func (*Case) node()          {}
func (*Cast) node()          {}
func (*Exists) node()        {}
func (*Subquery) node()      {}

func (*ColumnRef) exprNode()     {}
func (*Star) exprNode()          {}
func (*Literal) exprNode()       {}
func (*FunctionCall) exprNode()  {}
func (*AggregateCall) exprNode() {}
func (*Binary) exprNode()        {}
func (*Unary) exprNode()         {}
func (*Paren) exprNode()         {}
func (*IsNull) exprNode()        {}
func (*In) exprNode()            {}
func (*Between) exprNode()       {}
func (*Case) exprNode()          {}
func (*Cast) exprNode()          {}
func (*Exists) exprNode()        {}
func (*Subquery) exprNode()      {}
