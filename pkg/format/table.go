package format

import (
	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/doc"
)

// createTable formats a CREATE TABLE statement with one column per line.
//
// Example:
//
//	CREATE OR REPLACE TABLE users (
//	  id NUMBER(38,0) NOT NULL PRIMARY KEY
//	, tags ARRAY
//	)
//	;
func (p *printer) createTable(s *ast.Create) doc.Doc {
	cols := make([]doc.Doc, 0, len(s.Columns))
	for i, col := range s.Columns {
		prefix := ", "
		if i == 0 {
			prefix = "  "
		}
		cols = append(cols, doc.Concat(doc.Text(prefix), p.column(col)))
	}

	return terminate(doc.Concat(
		doc.Text(createHead(s)+" ("),
		doc.HardLine,
		doc.Join(doc.HardLine, cols),
		doc.HardLine,
		doc.Text(")"),
	))
}

func (p *printer) column(col *ast.ColumnDef) doc.Doc {
	parts := []doc.Doc{doc.Text(col.Name + " " + typeName(col.Type))}

	if col.NotNull {
		parts = append(parts, doc.Text(" NOT NULL"))
	}

	if col.Default != nil {
		parts = append(parts, doc.Text(" DEFAULT "), p.expr(col.Default))
	}

	if col.PrimaryKey {
		parts = append(parts, doc.Text(" PRIMARY KEY"))
	}

	if ref := col.References; ref != nil {
		target := ref.Table
		if ref.Column != "" {
			target += "(" + ref.Column + ")"
		}
		parts = append(parts, doc.Text(" REFERENCES "+target))
	}

	return doc.Concat(parts...)
}

// createHead builds "CREATE [OR REPLACE] <kind> [IF NOT EXISTS] <name>".
func createHead(s *ast.Create) string {
	head := "CREATE "
	if s.Replace {
		head += "OR REPLACE "
	}

	head += string(s.Kind) + " "
	if s.IfNotExists {
		head += "IF NOT EXISTS "
	}

	return head + s.Name
}
