package format

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/doc"
)

// grant formats a GRANT statement on a single line. Grants that did not match
// the structured shape are written back as they were, terminated by ";".
func (p *printer) grant(s *ast.Grant) doc.Doc {
	if s.Fallback() {
		raw := s.Raw
		if !strings.HasSuffix(raw, ";") {
			raw += ";"
		}
		return doc.Lines(strings.Split(raw, "\n")...)
	}

	parts := []string{"GRANT", s.Privilege, "ON", s.OnType, s.OnName}
	if s.InType != "" {
		parts = append(parts, "IN", s.InType, s.InName)
	}
	parts = append(parts, "TO", s.ToType, s.ToName)

	return doc.Text(strings.Join(parts, " ") + ";")
}
