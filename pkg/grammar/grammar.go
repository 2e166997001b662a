package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
)

type (
	// Grammar parses SQL text into syntax trees. It holds no per-call state and
	// is safe for concurrent use.
	Grammar struct {
		parser *participle.Parser[sqlFile]
	}

	// SyntaxError is returned when text is rejected by the grammar.
	SyntaxError struct {
		Message string
		Pos     lexer.Position
	}
)

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// New builds the grammar. Building is comparatively expensive, so callers
// should construct one Grammar and reuse it.
func New() (*Grammar, error) {
	p, err := participle.Build[sqlFile](
		participle.Lexer(sqlLexer),
		participle.Elide(KindComment, KindMultilineComment, KindWhitespace),
		participle.CaseInsensitive(KindKeyword, KindIdent),
		participle.UseLookahead(4),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build SQL grammar")
	}

	return &Grammar{parser: p}, nil
}

// MustNew is like New but panics on error.
func MustNew() *Grammar {
	g, err := New()
	if err != nil {
		panic(err)
	}
	return g
}

// Astify parses text containing zero or more ';'-separated statements.
//
// Example:
//
//	stmts, err := g.Astify("SELECT id FROM users;")
//	if err != nil {
//		var syntaxErr *grammar.SyntaxError
//		errors.As(err, &syntaxErr)
//	}
//	sel := stmts[0].(*ast.Select)
func (g *Grammar) Astify(text string) ([]ast.Statement, error) {
	file, err := g.parser.ParseString("", text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Message: perr.Message(), Pos: perr.Position()}
		}
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	stmts := make([]ast.Statement, 0, len(file.Statements))
	for _, s := range file.Statements {
		stmts = append(stmts, lowerStatement(s))
	}

	return stmts, nil
}
