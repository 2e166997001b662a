// Package restore re-applies placeholder codec records to the trees returned by
// the grammar, so the printer sees the statement as it was written.
package restore

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
)

// ErrOrphanedRecord is returned when a record matches nothing in the tree. It
// means the codec and the grammar disagree and is never caused by user input.
var ErrOrphanedRecord = errors.New("orphaned restoration record")

// createVerb is the Kind of an opaque CREATE statement.
const createVerb = "CREATE"

// Apply restores recs onto the root statements stmts in place. Every step
// assigns rather than accumulates, so applying the same records twice leaves
// the tree unchanged.
func Apply(stmts []ast.Statement, recs ast.Records) error {
	for _, rec := range recs.Replace {
		if !applyReplace(stmts, rec) {
			return errors.Wrapf(ErrOrphanedRecord, "replace marker for %s", rec.Kind)
		}
	}

	for _, stmt := range stmts {
		stmt.Annotated().ArrayAccess = recs.ArrayAccess
	}

	if len(recs.CustomTypes) == 0 {
		return nil
	}

	for _, rec := range recs.CustomTypes {
		if !applyCustomType(stmts, rec) {
			return errors.Wrapf(ErrOrphanedRecord, "custom type %s for column %s", rec.Original, rec.Column)
		}
	}

	for _, stmt := range stmts {
		if c, ok := stmt.(*ast.Create); ok && c.Kind == ast.KindTable {
			c.CustomTypes = recs.CustomTypes
		}
	}

	return nil
}

func applyReplace(stmts []ast.Statement, rec *ast.ReplaceMarker) bool {
	matched := false
	for _, stmt := range stmts {
		if c, ok := stmt.(*ast.Create); ok && c.Kind == rec.Kind {
			c.Replace = true
			matched = true
		}
		if opaqueCreate(stmt) {
			matched = true
		}
	}
	return matched
}

// opaqueCreate reports whether stmt is a CREATE the grammar only knows by its
// verb (CREATE TABLE ... AS SELECT, CLONE, COPY GRANTS). Records for such a
// statement are consumed without being applied since nothing renders it.
func opaqueCreate(stmt ast.Statement) bool {
	o, ok := stmt.(*ast.Opaque)
	return ok && o.Kind == createVerb
}

func applyCustomType(stmts []ast.Statement, rec *ast.CustomType) bool {
	matched := false
	for _, stmt := range stmts {
		if opaqueCreate(stmt) {
			matched = true
			continue
		}

		c, ok := stmt.(*ast.Create)
		if !ok || c.Kind != ast.KindTable {
			continue
		}

		for _, col := range c.Columns {
			if col.Name != rec.Column {
				continue
			}
			if col.Type.Name != rec.Placeholder && col.Type.Name != rec.Original {
				continue
			}

			col.Type = ast.DataType{Name: rec.Original}
			matched = true
		}
	}
	return matched
}
