package ast

type (
	// CTE is a single WITH binding.
	CTE struct {
		Name    string
		Columns []string
		Query   *Select
	}

	// SelectItem is one entry of a SELECT column list.
	SelectItem struct {
		Expr  Expr
		Alias string
	}

	// TableRef is an entry of a FROM list. Entries with a non-empty Join keyword
	// are join clauses; the others are plain comma-joined tables.
	TableRef struct {
		Name     string
		Subquery *Select
		Pivot    *Pivot
		Unpivot  *Unpivot
		Alias    string

		Join  string
		On    Expr
		Using []string
	}

	// Pivot is a PIVOT(<agg> FOR <col> IN (<values>)) table operator.
	Pivot struct {
		Aggregate Expr
		For       string
		In        []Expr
	}

	// Unpivot is an UNPIVOT(<value> FOR <name> IN (<cols>)) table operator.
	Unpivot struct {
		Value   string
		For     string
		Columns []string
	}

	// GroupBy is either GROUP BY ALL or an explicit list.
	GroupBy struct {
		All   bool
		Items []Expr
	}

	// OrderItem is an ORDER BY entry.
	OrderItem struct {
		Expr      Expr
		Direction string
		Nulls     string
	}

	// Limit holds LIMIT and OFFSET values verbatim.
	Limit struct {
		Count  string
		Offset string
	}

	// SetOp chains another query with UNION or UNION ALL.
	SetOp struct {
		Op    string
		Query *Select
	}

	// ColumnDef is a column of a CREATE TABLE statement.
	ColumnDef struct {
		Name       string
		Type       DataType
		NotNull    bool
		Default    Expr
		PrimaryKey bool
		References *ForeignKey
	}

	// DataType is a declared column type. Length and Scale are empty when absent.
	DataType struct {
		Name   string
		Length string
		Scale  string
	}

	// ForeignKey is a REFERENCES <table>(<column>) clause.
	ForeignKey struct {
		Table  string
		Column string
	}
)

// IsJoin reports whether the entry is a join clause.
func (t *TableRef) IsJoin() bool { return t.Join != "" }
