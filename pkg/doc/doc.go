// Package doc is a minimal layout document: literal text, forced line breaks,
// indentation and joins. Documents never reflow, so every line break in the
// output is one the builder asked for.
//
//	d := doc.Concat(
//		doc.Text("SELECT a"),
//		doc.Indent(doc.Concat(doc.HardLine, doc.Text("AND b"))),
//	)
//	doc.Render(d, 2) // "SELECT a\n  AND b"
package doc

import "strings"

type (
	// Doc is a layout document.
	Doc interface {
		render(r *renderer)
	}

	text     string
	hardLine struct{}
	indent   struct{ doc Doc }
	join     struct {
		sep  Doc
		docs []Doc
	}

	renderer struct {
		b         strings.Builder
		width     int
		level     int
		lineStart bool
	}
)

// HardLine is a forced line break. The next line starts at the current
// indentation.
var HardLine Doc = hardLine{}

// Text is literal text. It must not contain line breaks.
func Text(s string) Doc { return text(s) }

// Indent renders d one level deeper. Only lines started inside d are affected.
func Indent(d Doc) Doc { return indent{doc: d} }

// Join renders docs separated by sep. Nil entries are skipped.
func Join(sep Doc, docs []Doc) Doc {
	kept := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			kept = append(kept, d)
		}
	}
	return join{sep: sep, docs: kept}
}

// Concat renders docs back to back.
func Concat(docs ...Doc) Doc { return Join(nil, docs) }

// Lines joins each string as Text separated by hard line breaks.
func Lines(lines ...string) Doc {
	docs := make([]Doc, len(lines))
	for i, l := range lines {
		docs[i] = Text(l)
	}
	return Join(HardLine, docs)
}

// Render serializes d using width spaces per indentation level. Indentation is
// only written in front of text, so blank lines carry no trailing spaces.
func Render(d Doc, width int) string {
	r := &renderer{width: width, lineStart: true}
	if d != nil {
		d.render(r)
	}
	return r.b.String()
}

func (t text) render(r *renderer) {
	if t == "" {
		return
	}
	if r.lineStart {
		r.b.WriteString(strings.Repeat(" ", r.level*r.width))
		r.lineStart = false
	}
	r.b.WriteString(string(t))
}

func (hardLine) render(r *renderer) {
	r.b.WriteByte('\n')
	r.lineStart = true
}

func (i indent) render(r *renderer) {
	r.level++
	i.doc.render(r)
	r.level--
}

func (j join) render(r *renderer) {
	for n, d := range j.docs {
		if n > 0 && j.sep != nil {
			j.sep.render(r)
		}
		d.render(r)
	}
}
