package format

import (
	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/doc"
)

// createView formats a CREATE VIEW statement. The query starts on the line
// after the header.
func (p *printer) createView(s *ast.Create) doc.Doc {
	return terminate(doc.Concat(
		doc.Text(createHead(s)+" AS"),
		doc.HardLine,
		p.query(s.Query),
	))
}
