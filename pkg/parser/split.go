package parser

import (
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/grammar"
)

// Split splits text into trimmed, non-empty statements, each terminated by ';'.
//
// Statements are separated at ';' tokens, so a semicolon inside a string
// literal, quoted identifier or comment does not end a statement.
func Split(text string) []string {
	pieces := split(text)
	for i, p := range pieces {
		pieces[i] = p + ";"
	}
	return pieces
}

// split returns the trimmed pieces without their terminating ';'.
func split(text string) []string {
	tokens, err := grammar.Tokenize(text)
	if err != nil {
		return trimPieces(strings.Split(text, ";"))
	}

	var (
		raw   []string
		start int
	)

	for _, tok := range tokens {
		if tok.Kind == grammar.KindPunct && tok.Value == ";" {
			raw = append(raw, text[start:tok.Offset])
			start = tok.End()
		}
	}

	return trimPieces(append(raw, text[start:]))
}

func trimPieces(raw []string) []string {
	var pieces []string
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// leadingComments separates a leading run of "--" lines from the rest of a
// statement. Blank lines inside the run are dropped.
func leadingComments(text string) ([]string, string) {
	lines := strings.Split(text, "\n")

	var comments []string
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "--") {
			break
		}
		comments = append(comments, line)
	}

	return comments, strings.TrimSpace(strings.Join(lines[i:], "\n"))
}
