package ast

type (
	// Node is implemented by every element of the tree.
	Node interface {
		node()
	}

	// Statement is a top-level SQL statement.
	Statement interface {
		Node
		statementNode()
		Annotated() *Annotations
	}

	// Annotations holds data attached to a statement by tree restoration.
	Annotations struct {
		// ArrayAccess is the full list of array-index placeholders recorded for the
		// statement. Placeholders are resolved against it when printing.
		ArrayAccess []*ArrayAccess
	}

	// ObjectKind is the kind of object a CREATE statement defines.
	ObjectKind string

	// Comment is a run of leading "--" comment lines kept verbatim.
	Comment struct {
		Annotations
		Lines []string
	}

	// Select is a SELECT statement, optionally preceded by a WITH block and
	// followed by a set operation.
	Select struct {
		Annotations
		With     []*CTE
		Distinct bool
		Columns  []*SelectItem
		From     []*TableRef
		Where    Expr
		GroupBy  *GroupBy
		Having   Expr
		Qualify  Expr
		OrderBy  []*OrderItem
		Limit    *Limit
		SetOp    *SetOp
	}

	// Insert is an INSERT INTO statement fed either by a query or a VALUES list.
	Insert struct {
		Annotations
		Table   string
		Columns []string
		Query   *Select
		Values  [][]Expr
	}

	// Create is a CREATE TABLE or CREATE VIEW statement.
	Create struct {
		Annotations
		Kind        ObjectKind
		Replace     bool
		IfNotExists bool
		Name        string
		Columns     []*ColumnDef
		Query       *Select
		CustomTypes []*CustomType
	}

	// Grant is a GRANT statement. When the statement did not match the supported
	// shape only Raw is set.
	Grant struct {
		Annotations
		Privilege string
		OnType    string
		OnName    string
		InType    string
		InName    string
		ToType    string
		ToName    string
		Raw       string
	}

	// Opaque is a statement the grammar accepts but the formatter does not render.
	Opaque struct {
		Annotations
		Kind string
		Text string
	}
)

const (
	KindTable ObjectKind = "TABLE"
	KindView  ObjectKind = "VIEW"
)

// Annotated returns the statement's restoration annotations.
func (a *Annotations) Annotated() *Annotations { return a }

// Fallback reports whether the grant only carries its original text.
func (g *Grant) Fallback() bool { return g.Raw != "" }

func (*Comment) node()  {}
func (*Select) node()   {}
func (*Insert) node()   {}
func (*Create) node()   {}
func (*Grant) node()    {}
func (*Opaque) node()   {}
func (*CTE) node()      {}
func (*TableRef) node() {}

func (*Comment) statementNode() {}
func (*Select) statementNode()  {}
func (*Insert) statementNode()  {}
func (*Create) statementNode()  {}
func (*Grant) statementNode()   {}
func (*Opaque) statementNode()  {}
