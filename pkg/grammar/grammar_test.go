package grammar_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
	. "github.com/pseudomuto/flakefmt/pkg/grammar"
	"github.com/stretchr/testify/require"
)

func TestAstify(t *testing.T) {
	t.Parallel()
	g := MustNew()

	t.Run("select", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("select u.id, count(*) AS n from users u where u.id = 1 group by all;")
		require.NoError(t, err)
		require.Len(t, stmts, 1)

		sel, ok := stmts[0].(*ast.Select)
		require.True(t, ok)
		require.Len(t, sel.Columns, 2)
		require.Equal(t, &ast.ColumnRef{Qualifier: "u", Name: "id"}, sel.Columns[0].Expr)
		require.Equal(t, "n", sel.Columns[1].Alias)

		agg, ok := sel.Columns[1].Expr.(*ast.AggregateCall)
		require.True(t, ok)
		require.Equal(t, "count", agg.Name)
		require.Equal(t, &ast.Star{}, agg.Arg)

		require.Len(t, sel.From, 1)
		require.Equal(t, "users", sel.From[0].Name)
		require.Equal(t, "u", sel.From[0].Alias)
		require.True(t, sel.GroupBy.All)

		where, ok := sel.Where.(*ast.Binary)
		require.True(t, ok)
		require.Equal(t, "=", where.Op)
	})

	t.Run("joins are appended to the from list", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("SELECT a FROM t LEFT OUTER JOIN u ON t.id = u.id JOIN v USING (id)")
		require.NoError(t, err)

		sel := stmts[0].(*ast.Select)
		require.Len(t, sel.From, 3)
		require.False(t, sel.From[0].IsJoin())
		require.Equal(t, "LEFT OUTER JOIN", sel.From[1].Join)
		require.NotNil(t, sel.From[1].On)
		require.Equal(t, "JOIN", sel.From[2].Join)
		require.Equal(t, []string{"id"}, sel.From[2].Using)
	})

	t.Run("boolean operators are left associative", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("SELECT a FROM t WHERE a = 1 AND b = 2 OR c = 3")
		require.NoError(t, err)

		or, ok := stmts[0].(*ast.Select).Where.(*ast.Binary)
		require.True(t, ok)
		require.Equal(t, "OR", or.Op)

		and, ok := or.Left.(*ast.Binary)
		require.True(t, ok)
		require.Equal(t, "AND", and.Op)
	})

	t.Run("create table", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("CREATE TABLE db.t (id NUMBER(10, 2) PRIMARY KEY, uid INT REFERENCES users(id), n VARCHAR NOT NULL)")
		require.NoError(t, err)

		create, ok := stmts[0].(*ast.Create)
		require.True(t, ok)
		require.Equal(t, ast.KindTable, create.Kind)
		require.Equal(t, "db.t", create.Name)
		require.Len(t, create.Columns, 3)
		require.Equal(t, ast.DataType{Name: "NUMBER", Length: "10", Scale: "2"}, create.Columns[0].Type)
		require.True(t, create.Columns[0].PrimaryKey)
		require.Equal(t, &ast.ForeignKey{Table: "users", Column: "id"}, create.Columns[1].References)
		require.True(t, create.Columns[2].NotNull)
	})

	t.Run("create view", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("CREATE VIEW v AS SELECT a FROM t")
		require.NoError(t, err)

		create := stmts[0].(*ast.Create)
		require.Equal(t, ast.KindView, create.Kind)
		require.NotNil(t, create.Query)
	})

	t.Run("insert", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("insert into public.users (id, name) select id, name from temp_users;")
		require.NoError(t, err)

		ins := stmts[0].(*ast.Insert)
		require.Equal(t, "public.users", ins.Table)
		require.Equal(t, []string{"id", "name"}, ins.Columns)
		require.NotNil(t, ins.Query)
	})

	t.Run("unsupported statements are opaque", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("drop table t;")
		require.NoError(t, err)
		require.Equal(t, "DROP", stmts[0].(*ast.Opaque).Kind)
	})

	t.Run("multiple statements", func(t *testing.T) {
		t.Parallel()

		stmts, err := g.Astify("SELECT 1; SELECT 2;")
		require.NoError(t, err)
		require.Len(t, stmts, 2)
	})
}

func TestAstifySyntaxErrors(t *testing.T) {
	t.Parallel()
	g := MustNew()

	tests := []struct {
		name string
		sql  string
	}{
		{name: "array subscript", sql: "SELECT split(a, ',')[0] FROM t"},
		{name: "missing columns", sql: "SELECT FROM t"},
		{name: "dangling where", sql: "SELECT a FROM t WHERE"},
		{name: "stray character", sql: "SELECT a FROM t @"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := g.Astify(tt.sql)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			require.NotEmpty(t, syntaxErr.Message)
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens, err := Tokenize("SELECT 'a;b' -- c;\nFROM t;")
	require.NoError(t, err)

	sig := Significant(tokens)
	require.Len(t, sig, 5)
	require.Equal(t, KindKeyword, sig[0].Kind)
	require.Equal(t, KindString, sig[1].Kind)
	require.Equal(t, "'a;b'", sig[1].Value)
	require.True(t, sig[2].Word("from"))
	require.Equal(t, KindIdent, sig[3].Kind)
	require.Equal(t, ";", sig[4].Value)
	require.Equal(t, 7, sig[1].Offset)
	require.Equal(t, 12, sig[1].End())
}
