package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/codec"
	"github.com/pseudomuto/flakefmt/pkg/grammar"
	"github.com/pseudomuto/flakefmt/pkg/grant"
	"github.com/pseudomuto/flakefmt/pkg/restore"
)

type (
	// Parser turns SQL text into a Document. It keeps no per-call state.
	Parser struct {
		grammar *grammar.Grammar
		logger  *slog.Logger
	}

	// Option configures a Parser.
	Option func(*Parser)

	// StatementError is returned when a statement cannot be parsed. Statement is
	// the statement as written, before any placeholder rewrite.
	StatementError struct {
		Statement string
		Err       error
	}
)

func (e *StatementError) Error() string {
	return fmt.Sprintf("failed to parse statement %q: %v", e.Statement, e.Err)
}

// Cause returns the underlying grammar error.
func (e *StatementError) Cause() error { return e.Err }

func (e *StatementError) Unwrap() error { return e.Err }

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// New creates a Parser that uses g for all generic statements.
func New(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{grammar: g, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text into a Document.
//
// Input with more than one statement is handled piece by piece: each piece may
// start with "--" comment lines, which become an *ast.Comment ahead of the
// statement. GRANT statements are parsed by pkg/grant, everything else goes
// through the placeholder codec, the grammar and tree restoration. The first
// failing statement aborts the call with a *StatementError.
//
// Example:
//
//	p := parser.New(grammar.MustNew())
//	doc, err := p.Parse("SELECT a FROM t; GRANT USAGE ON DATABASE db TO ROLE r;")
//	if err != nil {
//		return err
//	}
//	len(doc.Statements) // 2
func (p *Parser) Parse(text string) (*Document, error) {
	doc := &Document{Kind: Kind, Text: text, Span: newSpan(text)}

	trimmed := strings.TrimSpace(text)
	pieces := split(trimmed)
	p.logger.Debug("Split SQL input", "statements", len(pieces))

	if len(pieces) <= 1 {
		stmts, err := p.parseUnit(trimmed)
		if err != nil {
			return nil, err
		}

		doc.Statements = stmts
		return doc, nil
	}

	doc.Multi = true
	for _, piece := range pieces {
		stmts, err := p.parseUnit(piece)
		if err != nil {
			return nil, err
		}

		doc.Statements = append(doc.Statements, stmts...)
	}

	return doc, nil
}

// parseUnit parses a single statement with optional leading comments.
func (p *Parser) parseUnit(text string) ([]ast.Statement, error) {
	var stmts []ast.Statement

	comments, rest := leadingComments(text)
	if len(comments) > 0 {
		stmts = append(stmts, &ast.Comment{Lines: comments})
	}

	rest = strings.TrimSpace(strings.TrimSuffix(rest, ";"))
	if rest == "" {
		return stmts, nil
	}

	if grant.IsGrant(rest) {
		return append(stmts, grant.Parse(terminate(rest))), nil
	}

	parsed, err := p.parseGeneric(rest)
	if err != nil {
		return nil, err
	}

	return append(stmts, parsed...), nil
}

// parseGeneric parses text, a statement without its terminator.
func (p *Parser) parseGeneric(text string) ([]ast.Statement, error) {
	rewritten, recs := codec.Rewrite(terminate(text))
	if !recs.Empty() {
		p.logger.Debug("Rewrote dialect syntax",
			"replace", len(recs.Replace),
			"custom_types", len(recs.CustomTypes),
			"array_access", len(recs.ArrayAccess),
		)
	}

	stmts, err := p.grammar.Astify(rewritten)
	if err != nil {
		return nil, &StatementError{Statement: text, Err: err}
	}

	if err := restore.Apply(stmts, recs); err != nil {
		return nil, errors.Wrapf(err, "failed to restore statement %q", text)
	}

	return stmts, nil
}

// terminate appends the statement terminator. A statement ending in a line
// comment gets it on a line of its own so the comment does not swallow it.
func terminate(text string) string {
	tokens, err := grammar.Tokenize(text)
	if err == nil && len(tokens) > 0 && tokens[len(tokens)-1].Kind == grammar.KindComment {
		return text + "\n;"
	}
	return text + ";"
}
