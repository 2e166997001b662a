package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
	. "github.com/pseudomuto/flakefmt/pkg/format"
	"github.com/pseudomuto/flakefmt/pkg/grammar"
	"github.com/pseudomuto/flakefmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

var testParser = parser.New(grammar.MustNew())

func formatSQL(t *testing.T, opts FormatterOptions, sql string) string {
	t.Helper()

	doc, err := testParser.Parse(sql)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, opts, doc))
	return buf.String()
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sql      string
		expected []string
	}{
		{
			name: "insert from select",
			sql:  "insert into public.users (id, name) select id, name from temp_users;",
			expected: []string{
				"INSERT INTO public.users (id, name)",
				"SELECT id",
				"     , name",
				"FROM temp_users",
				";",
			},
		},
		{
			name: "insert values",
			sql:  "insert into t values (1, 'a'), (2, null)",
			expected: []string{
				"INSERT INTO t",
				"VALUES (1, 'a')",
				"     , (2, NULL)",
				";",
			},
		},
		{
			name: "create or replace table",
			sql:  "CREATE OR REPLACE TABLE t (a int);",
			expected: []string{
				"CREATE OR REPLACE TABLE t (",
				"  a INT",
				")",
				";",
			},
		},
		{
			name: "create table with column options",
			sql: "create table if not exists db.users (id number(38,0) not null primary key, " +
				"name varchar(100) default 'x', team_id int references teams(id), tags array)",
			expected: []string{
				"CREATE TABLE IF NOT EXISTS db.users (",
				"  id NUMBER(38,0) NOT NULL PRIMARY KEY",
				", name VARCHAR(100) DEFAULT 'x'",
				", team_id INT REFERENCES teams(id)",
				", tags ARRAY",
				")",
				";",
			},
		},
		{
			name: "create or replace view",
			sql:  "create or replace view v as select a from t where a > 1",
			expected: []string{
				"CREATE OR REPLACE VIEW v AS",
				"SELECT a",
				"FROM t",
				"WHERE a > 1",
				";",
			},
		},
		{
			name: "two statements",
			sql:  "SELECT a FROM t; SELECT b FROM u;",
			expected: []string{
				"SELECT a",
				"FROM t",
				";",
				"",
				"SELECT b",
				"FROM u",
				";",
			},
		},
		{
			name: "boolean chain",
			sql:  "select a, b from t where x = 1 and y = 2 or z = 3",
			expected: []string{
				"SELECT a",
				"     , b",
				"FROM t",
				"WHERE x = 1",
				"  AND y = 2",
				"  OR z = 3",
				";",
			},
		},
		{
			name: "joins and trailing clauses",
			sql: "select u.id, count(*) as n from users u left join orders o on u.id = o.user_id " +
				"join x using (id) group by all order by n desc nulls last limit 10 offset 5",
			expected: []string{
				"SELECT u.id",
				"     , COUNT(*) AS n",
				"FROM users u",
				"LEFT JOIN orders o ON u.id = o.user_id",
				"JOIN x USING(id)",
				"GROUP BY ALL",
				"ORDER BY n DESC NULLS LAST",
				"LIMIT 10 OFFSET 5",
				";",
			},
		},
		{
			name: "having and qualify",
			sql: "select a, count(*) from t group by a having count(*) > 1 " +
				"qualify row_number() over (partition by a order by b) = 1",
			expected: []string{
				"SELECT a",
				"     , COUNT(*)",
				"FROM t",
				"GROUP BY a",
				"HAVING COUNT(*) > 1",
				"QUALIFY ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) = 1",
				";",
			},
		},
		{
			name: "common table expressions",
			sql:  "with a as (select x from t), b as (select y from a) select * from b",
			expected: []string{
				"WITH a AS (",
				"  SELECT x",
				"  FROM t",
				")",
				", b AS (",
				"  SELECT y",
				"  FROM a",
				")",
				"SELECT *",
				"FROM b",
				";",
			},
		},
		{
			name: "subquery in from",
			sql:  "select x from (select x from t) s",
			expected: []string{
				"SELECT x",
				"FROM (",
				"  SELECT x",
				"  FROM t",
				") s",
				";",
			},
		},
		{
			name: "union all",
			sql:  "select a from t union all select a from u",
			expected: []string{
				"SELECT a",
				"FROM t",
				"UNION ALL",
				"SELECT a",
				"FROM u",
				";",
			},
		},
		{
			name: "pivot",
			sql:  "select * from sales pivot(sum(amount) for month in ('jan', 'feb')) p",
			expected: []string{
				"SELECT *",
				"FROM sales PIVOT(SUM(amount) FOR month IN ('jan', 'feb')) p",
				";",
			},
		},
		{
			name: "expressions",
			sql: "select case when a is null then 'n' else 'y' end, cast(b as number(10,2)), c::date, " +
				"d not in (1, 2), e between 1 and 5, not f, -g, (h + 1) * 2, " +
				"sum(distinct i) over (partition by j order by k desc) " +
				"from t where exists (select 1 from u where u.id = t.id)",
			expected: []string{
				"SELECT CASE WHEN a IS NULL THEN 'n' ELSE 'y' END",
				"     , CAST(b AS NUMBER(10,2))",
				"     , c::DATE",
				"     , d NOT IN (1, 2)",
				"     , e BETWEEN 1 AND 5",
				"     , NOT f",
				"     , -g",
				"     , (h + 1) * 2",
				"     , SUM(DISTINCT i) OVER (PARTITION BY j ORDER BY k DESC)",
				"FROM t",
				"WHERE EXISTS (",
				"  SELECT 1",
				"  FROM u",
				"  WHERE u.id = t.id",
				")",
				";",
			},
		},
		{
			name: "array access",
			sql:  "select split(a, ',')[0] as first from t",
			expected: []string{
				"SELECT split(a, ',')[0] AS first",
				"FROM t",
				";",
			},
		},
		{
			name: "grants form one block",
			sql: "grant usage on database Raw to role loader; " +
				"grant usage on schema Sales in database Raw to role loader; " +
				"grant select, insert on table t to role loader;",
			expected: []string{
				"GRANT USAGE ON DATABASE Raw TO ROLE loader;",
				"GRANT USAGE ON SCHEMA Sales IN DATABASE Raw TO ROLE loader;",
				"grant select, insert on table t to role loader;",
			},
		},
		{
			name: "grant ending in a line comment",
			sql:  "GRANT USAGE ON SCHEMA s TO ROLE a -- note\n;\nGRANT USAGE ON SCHEMA s TO ROLE b;",
			expected: []string{
				"GRANT USAGE ON SCHEMA s TO ROLE a -- note",
				";",
				"GRANT USAGE ON SCHEMA s TO ROLE b;",
			},
		},
		{
			name: "comments",
			sql:  "-- header\nselect 1; -- trailing\n",
			expected: []string{
				"-- header",
				"SELECT 1",
				";",
				"",
				"-- trailing",
			},
		},
		{
			name: "replaced create without a layout is dropped",
			sql:  "create or replace table t as select 1 as a; select 1",
			expected: []string{
				"SELECT 1",
				";",
			},
		},
		{
			name: "unsupported statements are dropped",
			sql:  "use database x; select 1",
			expected: []string{
				"SELECT 1",
				";",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expected := strings.Join(tt.expected, "\n") + "\n"
			result := formatSQL(t, Defaults, tt.sql)
			require.Equal(t, expected, result)

			// formatted output is stable
			require.Equal(t, result, formatSQL(t, Defaults, result))
		})
	}
}

func TestFormat_empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, formatSQL(t, Defaults, ""))
	require.Empty(t, formatSQL(t, Defaults, "drop table t;"))
	require.Empty(t, formatSQL(t, Defaults, "  ;\n"))
}

func TestFormat_alignment(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 6; n++ {
		cols := make([]string, n)
		for i := range cols {
			cols[i] = "c" + strings.Repeat("x", i)
		}

		out := formatSQL(t, Defaults, "select "+strings.Join(cols, ", ")+" from t")

		continued := 0
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "     , ") {
				continued++
			}
		}
		require.Equal(t, n-1, continued)
	}
}

func TestFormat_indentSize(t *testing.T) {
	t.Parallel()

	out := formatSQL(t, FormatterOptions{IndentSize: 4}, "select a from t where x = 1 and y = 2")
	require.Equal(t, "SELECT a\nFROM t\nWHERE x = 1\n    AND y = 2\n;\n", out)
}

func TestFormat_strict(t *testing.T) {
	t.Parallel()

	doc, err := testParser.Parse("select 1; alter table t add column c int;")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Format(&buf, FormatterOptions{Strict: true}, doc)
	require.Error(t, err)

	var unsupported *UnsupportedStatementError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "ALTER", unsupported.Kind)
	require.Equal(t, "unsupported statement: ALTER", err.Error())

	doc, err = testParser.Parse("create or replace table t clone s;")
	require.NoError(t, err)

	err = Format(&buf, FormatterOptions{Strict: true}, doc)
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "CREATE", unsupported.Kind)
}

func TestFormatter_Statement(t *testing.T) {
	t.Parallel()

	f := New(Defaults)

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		d, err := f.Statement(nil)
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("opaque", func(t *testing.T) {
		t.Parallel()

		d, err := f.Statement(&ast.Opaque{Kind: "DROP", Text: "DROP TABLE t"})
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("repeated array access", func(t *testing.T) {
		t.Parallel()

		out, err := f.String(mustParse(t, "select f(a)[1], f(a)[1] from t"))
		require.NoError(t, err)
		require.Equal(t, "SELECT f(a)[1]\n     , f(a)[1]\nFROM t\n;\n", out)
	})
}

func mustParse(t *testing.T, sql string) *parser.Document {
	t.Helper()

	doc, err := testParser.Parse(sql)
	require.NoError(t, err)
	return doc
}
