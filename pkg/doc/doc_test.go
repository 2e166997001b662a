package doc_test

import (
	"testing"

	. "github.com/pseudomuto/flakefmt/pkg/doc"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      Doc
		width    int
		expected string
	}{
		{
			name:     "text",
			doc:      Text("SELECT 1"),
			width:    2,
			expected: "SELECT 1",
		},
		{
			name:     "nil",
			doc:      nil,
			width:    2,
			expected: "",
		},
		{
			name:     "join",
			doc:      Join(Text(", "), []Doc{Text("a"), nil, Text("b"), Text("c")}),
			width:    2,
			expected: "a, b, c",
		},
		{
			name: "indent applies to new lines only",
			doc: Concat(
				Text("WITH x AS ("),
				Indent(Concat(HardLine, Text("SELECT 1"), HardLine, Text("FROM t"))),
				HardLine,
				Text(")"),
			),
			width:    2,
			expected: "WITH x AS (\n  SELECT 1\n  FROM t\n)",
		},
		{
			name:     "nested indent",
			doc:      Indent(Concat(HardLine, Text("a"), Indent(Concat(HardLine, Text("b"))))),
			width:    4,
			expected: "\n    a\n        b",
		},
		{
			name:     "blank lines have no trailing spaces",
			doc:      Indent(Concat(HardLine, Text("a"), HardLine, HardLine, Text("b"))),
			width:    2,
			expected: "\n  a\n\n  b",
		},
		{
			name:     "lines",
			doc:      Lines("-- one", "-- two"),
			width:    2,
			expected: "-- one\n-- two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Render(tt.doc, tt.width))
		})
	}
}
