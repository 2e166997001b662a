package format

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/doc"
)

// insert formats an INSERT INTO statement. The source query or VALUES list
// starts on the line after the target.
func (p *printer) insert(s *ast.Insert) doc.Doc {
	head := "INSERT INTO " + s.Table
	if len(s.Columns) > 0 {
		head += " (" + strings.Join(s.Columns, ", ") + ")"
	}

	var body doc.Doc
	if s.Query != nil {
		body = p.query(s.Query)
	} else {
		body = p.values(s.Values)
	}

	return terminate(doc.Concat(doc.Text(head), doc.HardLine, body))
}

// values puts the first row on the VALUES line and the rest on leading-comma
// lines, matching select columns.
func (p *printer) values(rows [][]ast.Expr) doc.Doc {
	docs := make([]doc.Doc, 0, len(rows))
	for i, row := range rows {
		prefix := continuation
		if i == 0 {
			prefix = "VALUES "
		}

		docs = append(docs, doc.Concat(
			doc.Text(prefix+"("),
			p.exprList(row),
			doc.Text(")"),
		))
	}

	return doc.Join(doc.HardLine, docs)
}
