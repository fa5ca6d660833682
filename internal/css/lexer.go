package css

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is one lexed CSS token. Text is a copy of the source bytes, so the
// concatenated Text of a token run reproduces the source exactly.
type Token struct {
	Type css.TokenType
	Text string
}

// IsSpace reports whether the token is whitespace or a comment.
func (t Token) IsSpace() bool {
	return t.Type == css.WhitespaceToken || t.Type == css.CommentToken
}

// Tokenize lexes s into tokens. Lexing stops at the end of input or at the
// first lexer error.
func Tokenize(s string) []Token {
	l := css.NewLexer(parse.NewInputString(s))
	var out []Token
	for {
		tt, text := l.Next()
		if tt == css.ErrorToken {
			return out
		}
		out = append(out, Token{Type: tt, Text: string(text)})
	}
}

// depthDelta returns how a token changes parenthesis nesting.
func depthDelta(t Token) int {
	switch t.Type {
	case css.FunctionToken, css.LeftParenthesisToken:
		return 1
	case css.RightParenthesisToken:
		return -1
	}
	return 0
}

// join concatenates token text and trims surrounding whitespace.
func join(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return strings.TrimSpace(b.String())
}

// trimSpace drops leading and trailing whitespace tokens.
func trimSpace(toks []Token) []Token {
	for len(toks) > 0 && toks[0].IsSpace() {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].IsSpace() {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// SplitTopLevel splits s on commas that are not nested inside parentheses
// and returns the trimmed source text of each segment. Empty segments are
// kept so callers can see "a,,b" as three segments.
func SplitTopLevel(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var (
		segs  []string
		cur   []Token
		depth int
	)
	for _, t := range Tokenize(s) {
		if t.Type == css.CommaToken && depth == 0 {
			segs = append(segs, join(cur))
			cur = cur[:0]
			continue
		}
		depth = max(0, depth+depthDelta(t))
		cur = append(cur, t)
	}
	return append(segs, join(cur))
}

// Unwrap returns the argument text of a single function call named name,
// for example the content of "linear-gradient( ... )". The name match is
// case-insensitive. The call must be the whole value, closed, with only
// whitespace or a trailing semicolon around it.
func Unwrap(s, name string) (string, bool) {
	toks := trimSpace(Tokenize(s))
	if n := len(toks); n > 0 && toks[n-1].Type == css.SemicolonToken {
		toks = trimSpace(toks[:n-1])
	}
	if len(toks) < 2 || toks[0].Type != css.FunctionToken {
		return "", false
	}
	if !strings.EqualFold(strings.TrimSuffix(toks[0].Text, "("), name) {
		return "", false
	}
	last := len(toks) - 1
	if toks[last].Type != css.RightParenthesisToken || closingIndex(toks) != last {
		return "", false
	}
	return join(toks[1:last]), true
}

// FunctionName returns the lower-cased name of the function call s starts
// with, or "" if s does not start with one.
func FunctionName(s string) string {
	toks := trimSpace(Tokenize(s))
	if len(toks) == 0 || toks[0].Type != css.FunctionToken {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(toks[0].Text, "("))
}

// closingIndex returns the index of the token that closes the function or
// parenthesis opened by toks[0], or -1 if it is never closed.
func closingIndex(toks []Token) int {
	depth := 0
	for i, t := range toks {
		depth += depthDelta(t)
		if depth == 0 {
			return i
		}
	}
	return -1
}
