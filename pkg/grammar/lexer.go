package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Token kinds produced by the lexer.
const (
	KindComment          = "Comment"
	KindMultilineComment = "MultilineComment"
	KindString           = "String"
	KindQuotedIdent      = "QuotedIdent"
	KindNumber           = "Number"
	KindKeyword          = "Keyword"
	KindIdent            = "Ident"
	KindOperator         = "Operator"
	KindPunct            = "Punct"
	KindWhitespace       = "Whitespace"
	KindChar             = "Char"
)

var (
	// Reserved words. Anything not listed here lexes as an Ident and is still
	// matched case-insensitively by grammar literals such as 'TABLE' or 'KEY'.
	reserved = []string{
		"ALL", "AND", "ARRAY", "AS", "BETWEEN", "BY", "CASE", "CROSS", "DISTINCT",
		"ELSE", "END", "FALSE", "FOR", "FROM", "FULL", "GROUP", "HAVING", "ILIKE",
		"IN", "INNER", "INTO", "IS", "JOIN", "LEFT", "LIKE", "LIMIT", "NATURAL",
		"NOT", "NULL", "OBJECT", "OFFSET", "ON", "OR", "ORDER", "OUTER", "OVER",
		"PARTITION", "PIVOT", "QUALIFY", "RIGHT", "SELECT", "THEN", "TRUE", "UNION",
		"UNPIVOT", "USING", "VALUES", "WHEN", "WHERE", "WITH",
	}

	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: KindComment, Pattern: `--[^\r\n]*`},
		{Name: KindMultilineComment, Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: KindString, Pattern: `'(?:[^']|'')*'`},
		{Name: KindQuotedIdent, Pattern: `"(?:[^"]|"")*"`},
		{Name: KindNumber, Pattern: `\d+(?:\.\d*)?(?:[eE][+-]?\d+)?|\.\d+`},
		{Name: KindKeyword, Pattern: `(?i)\b(?:` + strings.Join(reserved, "|") + `)\b`},
		{Name: KindIdent, Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: KindOperator, Pattern: `<>|!=|<=|>=|\|\||::`},
		{Name: KindPunct, Pattern: `[(),.;=+\-*/%<>\[\]]`},
		{Name: KindWhitespace, Pattern: `\s+`},
		{Name: KindChar, Pattern: `.`},
	})

	kindNames = func() map[lexer.TokenType]string {
		names := make(map[lexer.TokenType]string)
		for name, typ := range sqlLexer.Symbols() {
			names[typ] = name
		}
		return names
	}()
)

// Token is a lexed token with its byte offset in the source text.
type Token struct {
	Kind   string
	Value  string
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Offset + len(t.Value) }

// Significant reports whether the token is visible to the grammar, i.e. it is
// neither whitespace nor a comment.
func (t Token) Significant() bool {
	switch t.Kind {
	case KindWhitespace, KindComment, KindMultilineComment:
		return false
	default:
		return true
	}
}

// Word reports whether the token is a keyword or identifier equal to w,
// ignoring case.
func (t Token) Word(w string) bool {
	return (t.Kind == KindKeyword || t.Kind == KindIdent) && strings.EqualFold(t.Value, w)
}

// Name reports whether the token can name a column or object.
func (t Token) Name() bool {
	return t.Kind == KindIdent || t.Kind == KindQuotedIdent
}

// Tokenize lexes text with the grammar's lexer, comments and whitespace included.
func Tokenize(text string) ([]Token, error) {
	lex, err := sqlLexer.LexString("", text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex SQL")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex SQL")
	}

	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}

		tokens = append(tokens, Token{Kind: kindNames[tok.Type], Value: tok.Value, Offset: tok.Pos.Offset})
	}

	return tokens, nil
}

// Significant filters out whitespace and comments.
func Significant(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Significant() {
			out = append(out, tok)
		}
	}
	return out
}
