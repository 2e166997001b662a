// Package grant parses GRANT statements, which the grammar does not model.
//
// Only the single-privilege shape is understood:
//
//	GRANT <privilege> ON <on_type> <on_name> [IN <in_type> <in_name>] TO <to_type> <to_name>
//
// Anything else (privilege lists, ROLE grants, ...) is kept verbatim.
package grant

import (
	"regexp"
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
)

var (
	grantPrefix = regexp.MustCompile(`(?i)^\s*GRANT\s+`)

	grantShape = regexp.MustCompile(`(?is)^\s*GRANT\s+(\w+)\s+ON\s+(\w+)\s+([^\s;]+)` +
		`(?:\s+IN\s+(\w+)\s+([^\s;]+))?` +
		`\s+TO\s+(\w+)\s+([^\s;]+)\s*;?\s*$`)
)

// IsGrant reports whether text is a GRANT statement.
func IsGrant(text string) bool {
	return grantPrefix.MatchString(text)
}

// Parse extracts a Grant from text. Types and the privilege are upper-cased and
// names are kept as written. Text that does not fit the supported shape comes
// back as a fallback node carrying the trimmed text.
func Parse(text string) *ast.Grant {
	m := grantShape.FindStringSubmatch(text)
	if m == nil {
		return &ast.Grant{Raw: strings.TrimSpace(text)}
	}

	return &ast.Grant{
		Privilege: strings.ToUpper(m[1]),
		OnType:    strings.ToUpper(m[2]),
		OnName:    m[3],
		InType:    strings.ToUpper(m[4]),
		InName:    m[5],
		ToType:    strings.ToUpper(m[6]),
		ToName:    m[7],
	}
}
