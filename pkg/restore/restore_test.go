package restore_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
	. "github.com/pseudomuto/flakefmt/pkg/restore"
	"github.com/stretchr/testify/require"
)

func newTable() *ast.Create {
	return &ast.Create{
		Kind: ast.KindTable,
		Name: "t",
		Columns: []*ast.ColumnDef{
			{Name: "id", Type: ast.DataType{Name: "INT"}},
			{Name: "tags", Type: ast.DataType{Name: "VARCHAR", Length: "10"}},
		},
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	access := []*ast.ArrayAccess{{Placeholder: "__array_access_0_66__", Call: "f", Index: 0}}
	recs := ast.Records{
		Replace:     []*ast.ReplaceMarker{{Kind: ast.KindTable}},
		CustomTypes: []*ast.CustomType{{Column: "tags", Placeholder: "VARCHAR", Original: "ARRAY"}},
		ArrayAccess: access,
	}

	t.Run("restores every record", func(t *testing.T) {
		t.Parallel()

		table := newTable()
		require.NoError(t, Apply([]ast.Statement{table}, recs))
		require.True(t, table.Replace)
		require.Equal(t, ast.DataType{Name: "INT"}, table.Columns[0].Type)
		require.Equal(t, ast.DataType{Name: "ARRAY"}, table.Columns[1].Type)
		require.Equal(t, recs.CustomTypes, table.CustomTypes)
		require.Equal(t, access, table.ArrayAccess)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		table := newTable()
		require.NoError(t, Apply([]ast.Statement{table}, recs))

		first := *table.Columns[1]
		require.NoError(t, Apply([]ast.Statement{table}, recs))
		require.Equal(t, first, *table.Columns[1])
		require.Len(t, table.CustomTypes, 1)
		require.Len(t, table.ArrayAccess, 1)
	})

	t.Run("replace only matches the recorded kind", func(t *testing.T) {
		t.Parallel()

		view := &ast.Create{Kind: ast.KindView, Name: "v", Query: &ast.Select{}}
		err := Apply([]ast.Statement{view}, ast.Records{Replace: []*ast.ReplaceMarker{{Kind: ast.KindTable}}})
		require.True(t, errors.Is(err, ErrOrphanedRecord))
		require.False(t, view.Replace)
	})

	t.Run("orphaned custom type", func(t *testing.T) {
		t.Parallel()

		err := Apply([]ast.Statement{newTable()}, ast.Records{
			CustomTypes: []*ast.CustomType{{Column: "missing", Placeholder: "VARCHAR", Original: "OBJECT"}},
		})
		require.True(t, errors.Is(err, ErrOrphanedRecord))
	})

	t.Run("array access is attached to every statement", func(t *testing.T) {
		t.Parallel()

		sel := &ast.Select{}
		grant := &ast.Grant{Raw: "GRANT x"}
		require.NoError(t, Apply([]ast.Statement{sel, grant}, ast.Records{ArrayAccess: access}))
		require.Equal(t, access, sel.ArrayAccess)
		require.Equal(t, access, grant.ArrayAccess)
	})

	t.Run("opaque create consumes its records", func(t *testing.T) {
		t.Parallel()

		opaque := &ast.Opaque{Kind: "CREATE", Text: "CREATE TABLE t AS SELECT 1 AS a"}
		require.NoError(t, Apply([]ast.Statement{opaque}, ast.Records{
			Replace:     []*ast.ReplaceMarker{{Kind: ast.KindTable}},
			CustomTypes: []*ast.CustomType{{Column: "tags", Placeholder: "VARCHAR", Original: "ARRAY"}},
		}))
	})

	t.Run("other opaque statements do not", func(t *testing.T) {
		t.Parallel()

		opaque := &ast.Opaque{Kind: "ALTER", Text: "ALTER TABLE t ADD c INT"}
		err := Apply([]ast.Statement{opaque}, ast.Records{Replace: []*ast.ReplaceMarker{{Kind: ast.KindTable}}})
		require.True(t, errors.Is(err, ErrOrphanedRecord))
	})
}
