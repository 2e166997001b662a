package grammar

// The participle grammar. These types only describe syntax; Astify lowers them
// into pkg/ast before anything else sees them.

type (
	sqlFile struct {
		Statements []*statement `parser:"';'* ( @@ ( ';'+ @@ )* ';'* )?"`
	}

	statement struct {
		Select      *selectStmt      `parser:"  @@"`
		Insert      *insertStmt      `parser:"| @@"`
		CreateTable *createTableStmt `parser:"| @@"`
		CreateView  *createViewStmt  `parser:"| @@"`
		Other       *otherStmt       `parser:"| @@"`
	}

	// otherStmt swallows statements led by a known verb that are not rendered.
	otherStmt struct {
		Verb   string   `parser:"@( 'ALTER' | 'BEGIN' | 'CALL' | 'COMMENT' | 'COMMIT' | 'COPY' | 'CREATE' | 'DELETE' | 'DESC' | 'DESCRIBE' | 'DROP' | 'EXECUTE' | 'EXPLAIN' | 'MERGE' | 'REVOKE' | 'ROLLBACK' | 'SET' | 'SHOW' | 'TRUNCATE' | 'UNDROP' | 'UNSET' | 'UPDATE' | 'USE' )"`
		Tokens []string `parser:"@(~';')*"`
	}

	selectStmt struct {
		With     []*cte        `parser:"( 'WITH' @@ ( ',' @@ )* )?"`
		Distinct bool          `parser:"'SELECT' @'DISTINCT'?"`
		Columns  []*selectItem `parser:"@@ ( ',' @@ )*"`
		From     *fromClause   `parser:"( 'FROM' @@ )?"`
		Where    *expression   `parser:"( 'WHERE' @@ )?"`
		GroupBy  *groupBy      `parser:"( 'GROUP' 'BY' @@ )?"`
		Having   *expression   `parser:"( 'HAVING' @@ )?"`
		Qualify  *expression   `parser:"( 'QUALIFY' @@ )?"`
		OrderBy  []*orderItem  `parser:"( 'ORDER' 'BY' @@ ( ',' @@ )* )?"`
		Limit    *limit        `parser:"@@?"`
		SetOp    *setOp        `parser:"@@?"`
	}

	cte struct {
		Name    string      `parser:"@(Ident | QuotedIdent)"`
		Columns []string    `parser:"( '(' @(Ident | QuotedIdent) ( ',' @(Ident | QuotedIdent) )* ')' )?"`
		Query   *selectStmt `parser:"'AS' '(' @@ ')'"`
	}

	selectItem struct {
		Star  bool        `parser:"  @'*'"`
		Expr  *expression `parser:"| @@"`
		Alias string      `parser:"  ( 'AS'? @(Ident | QuotedIdent) )?"`
	}

	fromClause struct {
		Tables []*tableRef `parser:"@@ ( ',' @@ )*"`
		Joins  []*join     `parser:"@@*"`
	}

	tableRef struct {
		Subquery *selectStmt `parser:"(   '(' @@ ')'"`
		Name     []string    `parser:"  | @(Ident | QuotedIdent) ( '.' @(Ident | QuotedIdent) )* )"`
		Pivot    *pivot      `parser:"@@?"`
		Unpivot  *unpivot    `parser:"@@?"`
		Alias    string      `parser:"( 'AS'? @(Ident | QuotedIdent) )?"`
	}

	join struct {
		Kind  string      `parser:"@( 'INNER' | 'LEFT' | 'RIGHT' | 'FULL' | 'CROSS' | 'NATURAL' )?"`
		Outer bool        `parser:"@'OUTER'? 'JOIN'"`
		Table *tableRef   `parser:"@@"`
		On    *expression `parser:"(   'ON' @@"`
		Using []string    `parser:"  | 'USING' '(' @(Ident | QuotedIdent) ( ',' @(Ident | QuotedIdent) )* ')' )?"`
	}

	pivot struct {
		Aggregate *expression   `parser:"'PIVOT' '(' @@"`
		For       string        `parser:"'FOR' @(Ident | QuotedIdent)"`
		In        []*expression `parser:"'IN' '(' @@ ( ',' @@ )* ')' ')'"`
	}

	unpivot struct {
		Value   string   `parser:"'UNPIVOT' '(' @(Ident | QuotedIdent)"`
		For     string   `parser:"'FOR' @(Ident | QuotedIdent)"`
		Columns []string `parser:"'IN' '(' @(Ident | QuotedIdent) ( ',' @(Ident | QuotedIdent) )* ')' ')'"`
	}

	groupBy struct {
		All   bool          `parser:"  @'ALL'"`
		Items []*expression `parser:"| @@ ( ',' @@ )*"`
	}

	orderItem struct {
		Expr      *expression `parser:"@@"`
		Direction string      `parser:"@( 'ASC' | 'DESC' )?"`
		Nulls     string      `parser:"( 'NULLS' @( 'FIRST' | 'LAST' ) )?"`
	}

	limit struct {
		Count  string `parser:"'LIMIT' @Number"`
		Offset string `parser:"( 'OFFSET' @Number )?"`
	}

	setOp struct {
		All   bool        `parser:"'UNION' @'ALL'?"`
		Query *selectStmt `parser:"@@"`
	}

	insertStmt struct {
		Table   []string     `parser:"'INSERT' 'INTO' @(Ident | QuotedIdent) ( '.' @(Ident | QuotedIdent) )*"`
		Columns []string     `parser:"( '(' @(Ident | QuotedIdent) ( ',' @(Ident | QuotedIdent) )* ')' )?"`
		Values  []*valuesRow `parser:"(   'VALUES' @@ ( ',' @@ )*"`
		Query   *selectStmt  `parser:"  | @@ )"`
	}

	valuesRow struct {
		Values []*expression `parser:"'(' @@ ( ',' @@ )* ')'"`
	}

	createTableStmt struct {
		IfNotExists bool         `parser:"'CREATE' 'TABLE' @( 'IF' 'NOT' 'EXISTS' )?"`
		Name        []string     `parser:"@(Ident | QuotedIdent) ( '.' @(Ident | QuotedIdent) )*"`
		Columns     []*columnDef `parser:"'(' @@ ( ',' @@ )* ')'"`
	}

	columnDef struct {
		Name       string      `parser:"@(Ident | QuotedIdent)"`
		Type       *dataType   `parser:"@@"`
		NotNull    bool        `parser:"(   @( 'NOT' 'NULL' )"`
		Null       bool        `parser:"  | @'NULL'"`
		Default    *expression `parser:"  | 'DEFAULT' @@"`
		PrimaryKey bool        `parser:"  | @( 'PRIMARY' 'KEY' )"`
		References *foreignKey `parser:"  | @@ )*"`
	}

	dataType struct {
		Name   string `parser:"@(Ident | QuotedIdent)"`
		Length string `parser:"( '(' @Number"`
		Scale  string `parser:"  ( ',' @Number )? ')' )?"`
	}

	foreignKey struct {
		Table  []string `parser:"'REFERENCES' @(Ident | QuotedIdent) ( '.' @(Ident | QuotedIdent) )*"`
		Column string   `parser:"( '(' @(Ident | QuotedIdent) ')' )?"`
	}

	createViewStmt struct {
		IfNotExists bool        `parser:"'CREATE' 'VIEW' @( 'IF' 'NOT' 'EXISTS' )?"`
		Name        []string    `parser:"@(Ident | QuotedIdent) ( '.' @(Ident | QuotedIdent) )*"`
		Query       *selectStmt `parser:"'AS' @@"`
	}
)

// Expressions, loosest binding first.
type (
	expression struct {
		Left *andExpr   `parser:"@@"`
		Rest []*andExpr `parser:"( 'OR' @@ )*"`
	}

	andExpr struct {
		Left *notExpr   `parser:"@@"`
		Rest []*notExpr `parser:"( 'AND' @@ )*"`
	}

	notExpr struct {
		Not *notExpr    `parser:"  'NOT' @@"`
		Cmp *comparison `parser:"| @@"`
	}

	comparison struct {
		Left *additive       `parser:"@@"`
		Tail *comparisonTail `parser:"@@?"`
	}

	comparisonTail struct {
		Compare *compareOp   `parser:"  @@"`
		Is      *isTail      `parser:"| @@"`
		Like    *likeTail    `parser:"| @@"`
		In      *inTail      `parser:"| @@"`
		Between *betweenTail `parser:"| @@"`
	}

	compareOp struct {
		Op    string    `parser:"@( '=' | '<>' | '!=' | '<=' | '>=' | '<' | '>' )"`
		Right *additive `parser:"@@"`
	}

	isTail struct {
		Not  bool `parser:"'IS' @'NOT'?"`
		Null bool `parser:"@'NULL'"`
	}

	likeTail struct {
		Not   bool      `parser:"@'NOT'?"`
		Op    string    `parser:"@( 'LIKE' | 'ILIKE' )"`
		Right *additive `parser:"@@"`
	}

	inTail struct {
		Not   bool          `parser:"@'NOT'? 'IN' '('"`
		Query *selectStmt   `parser:"(   @@"`
		List  []*expression `parser:"  | @@ ( ',' @@ )* ) ')'"`
	}

	betweenTail struct {
		Not  bool      `parser:"@'NOT'? 'BETWEEN'"`
		Low  *additive `parser:"@@"`
		High *additive `parser:"'AND' @@"`
	}

	additive struct {
		Left *multiplicative `parser:"@@"`
		Rest []*additiveRest `parser:"@@*"`
	}

	additiveRest struct {
		Op    string          `parser:"@( '+' | '-' | '||' )"`
		Right *multiplicative `parser:"@@"`
	}

	multiplicative struct {
		Left *unary                `parser:"@@"`
		Rest []*multiplicativeRest `parser:"@@*"`
	}

	multiplicativeRest struct {
		Op    string `parser:"@( '*' | '/' | '%' )"`
		Right *unary `parser:"@@"`
	}

	unary struct {
		Op      string   `parser:"@( '-' | '+' )?"`
		Operand *postfix `parser:"@@"`
	}

	postfix struct {
		Primary *primary    `parser:"@@"`
		Casts   []*dataType `parser:"( '::' @@ )*"`
	}

	primary struct {
		Literal  *literal    `parser:"  @@"`
		Case     *caseExpr   `parser:"| @@"`
		Cast     *castExpr   `parser:"| @@"`
		Exists   *selectStmt `parser:"| 'EXISTS' '(' @@ ')'"`
		Subquery *selectStmt `parser:"| '(' @@ ')'"`
		Paren    *expression `parser:"| '(' @@ ')'"`
		Ref      *reference  `parser:"| @@"`
	}

	literal struct {
		Number *string `parser:"  @Number"`
		String *string `parser:"| @String"`
		Bool   *string `parser:"| @( 'TRUE' | 'FALSE' )"`
		Null   bool    `parser:"| @'NULL'"`
	}

	caseExpr struct {
		Operand *expression   `parser:"'CASE' @@?"`
		Whens   []*whenClause `parser:"@@+"`
		Else    *expression   `parser:"( 'ELSE' @@ )? 'END'"`
	}

	whenClause struct {
		Cond   *expression `parser:"'WHEN' @@"`
		Result *expression `parser:"'THEN' @@"`
	}

	castExpr struct {
		Expr *expression `parser:"'CAST' '(' @@"`
		Type *dataType   `parser:"'AS' @@ ')'"`
	}

	// reference covers column references, qualified stars and function calls,
	// which all start with a (possibly dotted) name.
	reference struct {
		Parts []string `parser:"@(Ident | QuotedIdent | 'LEFT' | 'RIGHT') ( '.' @(Ident | QuotedIdent) )*"`
		Star  bool     `parser:"( '.' @'*' )?"`
		Call  *call    `parser:"@@?"`
	}

	call struct {
		Distinct bool          `parser:"'(' @'DISTINCT'?"`
		Star     bool          `parser:"(   @'*'"`
		Args     []*expression `parser:"  | @@ ( ',' @@ )* )? ')'"`
		Over     *window       `parser:"@@?"`
	}

	window struct {
		PartitionBy []*expression `parser:"'OVER' '(' ( 'PARTITION' 'BY' @@ ( ',' @@ )* )?"`
		OrderBy     []*orderItem  `parser:"( 'ORDER' 'BY' @@ ( ',' @@ )* )? ')'"`
	}
)
