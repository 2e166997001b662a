package parser

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
)

// Kind is the document kind reported for every parsed input.
const Kind = "sql"

type (
	// Document is the result of parsing an input. It owns its statements.
	Document struct {
		Kind string

		// Statements in source order. Comment nodes precede the statement they
		// were attached to.
		Statements []ast.Statement

		// Multi is set when the input was parsed as a list of statements rather
		// than as a single unit.
		Multi bool

		// Text is the original, untrimmed input.
		Text string

		// Span covers the whole of Text.
		Span Span
	}

	// Span is a range of source text.
	Span struct {
		Start Position
		End   Position
	}

	// Position is a location in source text. Line is 1-based, Column is 0-based.
	Position struct {
		Offset int
		Line   int
		Column int
	}
)

func newSpan(text string) Span {
	lines := strings.Split(text, "\n")
	return Span{
		Start: Position{Offset: 0, Line: 1, Column: 0},
		End: Position{
			Offset: len(text),
			Line:   len(lines),
			Column: len(lines[len(lines)-1]),
		},
	}
}
