package format

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/doc"
	"github.com/pseudomuto/flakefmt/pkg/parser"
)

type (
	// FormatterOptions controls formatting behavior.
	FormatterOptions struct {
		// IndentSize is the number of spaces per indent level.
		IndentSize int

		// Strict rejects statements that have no layout instead of dropping them.
		Strict bool
	}

	// Formatter renders documents with a fixed set of options.
	Formatter struct {
		options FormatterOptions
	}

	// UnsupportedStatementError is returned in strict mode for statements the
	// formatter cannot render.
	UnsupportedStatementError struct {
		Kind string
	}

	// printer builds the layout of a single statement. access holds the
	// statement's array-index records used to expand placeholders.
	printer struct {
		access []*ast.ArrayAccess
	}
)

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{IndentSize: 2}

func (e *UnsupportedStatementError) Error() string {
	return fmt.Sprintf("unsupported statement: %s", e.Kind)
}

// New creates a Formatter. A non-positive IndentSize falls back to the default.
func New(opts FormatterOptions) *Formatter {
	if opts.IndentSize <= 0 {
		opts.IndentSize = Defaults.IndentSize
	}
	return &Formatter{options: opts}
}

// Format writes the formatted document to w using opts.
func Format(w io.Writer, opts FormatterOptions, d *parser.Document) error {
	return New(opts).Format(w, d)
}

// Format writes the formatted document to w.
//
// Statements are separated by a blank line, except that a comment is followed
// directly by the statement it precedes and consecutive grants form one block.
// Non-empty output ends with a newline; a document without renderable
// statements produces no output at all.
func (f *Formatter) Format(w io.Writer, d *parser.Document) error {
	out, err := f.String(d)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write formatted output")
	}

	return nil
}

// String returns the formatted document.
func (f *Formatter) String(d *parser.Document) (string, error) {
	layout, err := f.Document(d)
	if err != nil {
		return "", err
	}

	return doc.Render(layout, f.options.IndentSize), nil
}

// Document builds the layout of a whole document.
func (f *Formatter) Document(d *parser.Document) (doc.Doc, error) {
	if d == nil {
		return nil, nil
	}

	var (
		parts []doc.Doc
		last  ast.Statement
	)

	for _, stmt := range d.Statements {
		layout, err := f.Statement(stmt)
		if err != nil {
			return nil, err
		}
		if layout == nil {
			continue
		}

		if last != nil {
			parts = append(parts, doc.HardLine)
			if !adjacent(last, stmt) {
				parts = append(parts, doc.HardLine)
			}
		}

		parts = append(parts, layout)
		last = stmt
	}

	if len(parts) == 0 {
		return nil, nil
	}

	return doc.Concat(append(parts, doc.HardLine)...), nil
}

// Statement builds the layout of a single statement. It returns nil for
// statements that produce no output.
func (f *Formatter) Statement(stmt ast.Statement) (doc.Doc, error) {
	if stmt == nil {
		return nil, nil
	}

	p := &printer{access: stmt.Annotated().ArrayAccess}

	switch s := stmt.(type) {
	case *ast.Comment:
		return doc.Lines(s.Lines...), nil
	case *ast.Select:
		return terminate(p.query(s)), nil
	case *ast.Insert:
		return p.insert(s), nil
	case *ast.Create:
		if s.Kind == ast.KindView {
			return p.createView(s), nil
		}
		return p.createTable(s), nil
	case *ast.Grant:
		return p.grant(s), nil
	case *ast.Opaque:
		if f.options.Strict {
			return nil, &UnsupportedStatementError{Kind: s.Kind}
		}
		return nil, nil
	default:
		if f.options.Strict {
			return nil, &UnsupportedStatementError{Kind: fmt.Sprintf("%T", stmt)}
		}
		return nil, nil
	}
}

// adjacent reports whether next follows prev without a blank line.
func adjacent(prev, next ast.Statement) bool {
	if _, ok := prev.(*ast.Comment); ok {
		return true
	}

	_, prevGrant := prev.(*ast.Grant)
	_, nextGrant := next.(*ast.Grant)
	return prevGrant && nextGrant
}

// terminate puts the statement terminator on a line of its own.
func terminate(d doc.Doc) doc.Doc {
	return doc.Concat(d, doc.HardLine, doc.Text(";"))
}
