// Package codec rewrites dialect syntax the grammar cannot parse into syntax it
// can, recording how to undo each rewrite.
//
// Three rewrites run in a fixed order, each over the grammar's own token stream
// so nothing inside a string literal, quoted identifier or comment is touched:
//
//  1. CREATE OR REPLACE TABLE|VIEW becomes CREATE TABLE|VIEW (ast.ReplaceMarker).
//  2. ARRAY/OBJECT column types in CREATE TABLE become VARCHAR (ast.CustomType).
//  3. call(...)[n] becomes a single identifier placeholder (ast.ArrayAccess).
//
// A construct that does not match is left alone and produces no record.
package codec

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pseudomuto/flakefmt/pkg/ast"
	"github.com/pseudomuto/flakefmt/pkg/grammar"
)

const (
	// PlaceholderType stands in for ARRAY and OBJECT column types.
	PlaceholderType = "VARCHAR"

	placeholderPrefix = "__array_access_"
	placeholderSuffix = "__"
)

// Rewrite applies every rewrite to a single statement.
//
// Example:
//
//	text, recs := codec.Rewrite("CREATE OR REPLACE TABLE t (tags ARRAY)")
//	// text: "CREATE TABLE t (tags VARCHAR)"
//	// recs.Replace:     [{Kind: TABLE}]
//	// recs.CustomTypes: [{Column: tags, Placeholder: VARCHAR, Original: ARRAY}]
func Rewrite(text string) (string, ast.Records) {
	var recs ast.Records
	text, recs.Replace = RewriteReplace(text)
	text, recs.CustomTypes = RewriteCustomTypes(text)
	text, recs.ArrayAccess = RewriteArrayAccess(text)
	return text, recs
}

// RewriteReplace rewrites the first CREATE OR REPLACE TABLE|VIEW.
func RewriteReplace(text string) (string, []*ast.ReplaceMarker) {
	sig, ok := significant(text)
	if !ok {
		return text, nil
	}

	for i := 0; i+3 < len(sig); i++ {
		if !sig[i].Word("CREATE") || !sig[i+1].Word("OR") || !sig[i+2].Word("REPLACE") {
			continue
		}

		kind := sig[i+3]
		if !kind.Word(string(ast.KindTable)) && !kind.Word(string(ast.KindView)) {
			continue
		}

		upper := strings.ToUpper(kind.Value)
		out := text[:sig[i].Offset] + "CREATE " + upper + text[kind.End():]
		return out, []*ast.ReplaceMarker{{Kind: ast.ObjectKind(upper)}}
	}

	return text, nil
}

// RewriteCustomTypes replaces ARRAY/OBJECT column types of a CREATE TABLE
// statement with PlaceholderType. Records are returned in column order.
func RewriteCustomTypes(text string) (string, []*ast.CustomType) {
	sig, ok := significant(text)
	if !ok || len(sig) < 2 || !sig[0].Word("CREATE") || !sig[1].Word(string(ast.KindTable)) {
		return text, nil
	}

	var (
		b    strings.Builder
		last int
		recs []*ast.CustomType
	)

	for i := 2; i+1 < len(sig); i++ {
		prev, name, typ := sig[i-1], sig[i], sig[i+1]
		if !name.Name() || (prev.Value != "(" && prev.Value != ",") {
			continue
		}
		if !typ.Word("ARRAY") && !typ.Word("OBJECT") {
			continue
		}

		b.WriteString(text[last:typ.Offset])
		b.WriteString(PlaceholderType)
		last = typ.End()

		recs = append(recs, &ast.CustomType{
			Column:      name.Value,
			Placeholder: PlaceholderType,
			Original:    strings.ToUpper(typ.Value),
		})
	}

	if len(recs) == 0 {
		return text, nil
	}

	b.WriteString(text[last:])
	return b.String(), recs
}

// RewriteArrayAccess replaces every call(...)[n] with a placeholder identifier.
// Nested accesses are rewritten innermost first, so the recorded call text of an
// outer access may itself contain a placeholder.
func RewriteArrayAccess(text string) (string, []*ast.ArrayAccess) {
	var recs []*ast.ArrayAccess
	for {
		next, rec := rewriteFirstArrayAccess(text)
		if rec == nil {
			return text, recs
		}

		text = next
		recs = append(recs, rec)
	}
}

func rewriteFirstArrayAccess(text string) (string, *ast.ArrayAccess) {
	sig, ok := significant(text)
	if !ok {
		return text, nil
	}

	for i := 0; i+3 < len(sig); i++ {
		if sig[i].Value != ")" || sig[i+1].Value != "[" || sig[i+2].Kind != grammar.KindNumber || sig[i+3].Value != "]" {
			continue
		}

		index, err := strconv.Atoi(sig[i+2].Value)
		if err != nil {
			continue
		}

		open := matchingOpen(sig, i)
		if open < 1 || !sig[open-1].Name() {
			continue
		}

		start := open - 1
		for start >= 2 && sig[start-1].Value == "." && sig[start-2].Name() {
			start -= 2
		}

		call := text[sig[start].Offset:sig[i].End()]
		ph := Placeholder(call, index)

		return text[:sig[start].Offset] + ph + text[sig[i+3].End():], &ast.ArrayAccess{
			Placeholder: ph,
			Call:        call,
			Index:       index,
		}
	}

	return text, nil
}

// Placeholder returns the identifier that stands in for call[index].
func Placeholder(call string, index int) string {
	return placeholderPrefix + strconv.Itoa(index) + "_" + hex.EncodeToString([]byte(call)) + placeholderSuffix
}

// Expand replaces every placeholder in s with its original call[index] text. The
// first record matching a placeholder wins.
func Expand(s string, records []*ast.ArrayAccess) string {
	for range len(records) {
		if !strings.Contains(s, placeholderPrefix) {
			break
		}

		changed := false
		for _, rec := range records {
			if strings.Contains(s, rec.Placeholder) {
				s = strings.ReplaceAll(s, rec.Placeholder, rec.Call+"["+strconv.Itoa(rec.Index)+"]")
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return s
}

func matchingOpen(sig []grammar.Token, closeAt int) int {
	depth := 0
	for j := closeAt; j >= 0; j-- {
		switch sig[j].Value {
		case ")":
			depth++
		case "(":
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func significant(text string) ([]grammar.Token, bool) {
	tokens, err := grammar.Tokenize(text)
	if err != nil {
		return nil, false
	}
	return grammar.Significant(tokens), true
}
