package regexlib

import (
	"fmt"
	"strings"
)

// tokenKind discriminates the lexical token variants.
type tokenKind int

const (
	tokenLetter    tokenKind = iota // a-z, 0-9, or space
	tokenGroup                      // parenthesized subexpression
	tokenUnion                      // |
	tokenStar                       // *
	tokenPlus                       // +
	tokenAnyLetter                  // \w
	tokenAnyDigit                   // \d
)

// Token is one lexical unit of a pattern. Group tokens hold the token
// sequence of their parenthesized subexpression.
type Token struct {
	kind  tokenKind
	ch    rune
	group []Token
}

// IsValue reports whether the token stands for a matchable unit: a
// letter, a character class, or a group.
func (t Token) IsValue() bool {
	switch t.kind {
	case tokenLetter, tokenGroup, tokenAnyLetter, tokenAnyDigit:
		return true
	}
	return false
}

// IsLeftValue reports whether the token can legally end the left side of
// a concatenation. Only a union operator cannot.
func (t Token) IsLeftValue() bool {
	return t.kind != tokenUnion
}

func (t Token) String() string {
	switch t.kind {
	case tokenLetter:
		return string(t.ch)
	case tokenGroup:
		parts := make([]string, len(t.group))
		for i, tok := range t.group {
			parts[i] = tok.String()
		}
		return "(" + strings.Join(parts, "") + ")"
	case tokenUnion:
		return "|"
	case tokenStar:
		return "*"
	case tokenPlus:
		return "+"
	case tokenAnyLetter:
		return `\w`
	case tokenAnyDigit:
		return `\d`
	}
	return "?"
}

// LexError reports a character the tokenizer cannot classify.
type LexError struct {
	Char    rune
	Escaped bool
}

func (e *LexError) Error() string {
	if e.Escaped {
		return fmt.Sprintf("unrecognized escape sequence `\\%c`", e.Char)
	}
	return fmt.Sprintf("unrecognized character `%c`", e.Char)
}

// Tokenize scans a pattern into a token sequence. Parenthesized
// subexpressions are scanned recursively and folded into single group
// tokens, so the result reflects grouping but no operator structure.
// Tokens carry no position information.
func Tokenize(pattern string) ([]Token, error) {
	var tokens []Token
	depth := 0
	groupStart := 0
	escaped := false
	for i, chr := range pattern {
		switch {
		case escaped:
			// inside a group the raw text is buffered and the
			// recursive scan classifies the escape instead
			if depth == 0 {
				tok, err := escapeToken(chr)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
			}
		case chr == '(':
			depth++
			if depth == 1 {
				groupStart = i + 1
			}
		case chr == ')':
			depth--
			if depth == 0 {
				inner, err := Tokenize(pattern[groupStart:i])
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, Token{kind: tokenGroup, group: inner})
			}
		case chr == '\\':
			// consumed by the escaped flag below
		default:
			if depth == 0 {
				tok, err := classify(chr)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
			}
		}
		escaped = chr == '\\'
	}
	return tokens, nil
}

// classify maps a single unescaped character to its token.
func classify(chr rune) (Token, error) {
	switch {
	case chr == '|':
		return Token{kind: tokenUnion}, nil
	case chr == '*':
		return Token{kind: tokenStar}, nil
	case chr == '+':
		return Token{kind: tokenPlus}, nil
	case chr >= 'a' && chr <= 'z', chr >= '0' && chr <= '9', chr == ' ':
		return Token{kind: tokenLetter, ch: chr}, nil
	}
	return Token{}, &LexError{Char: chr}
}

// escapeToken maps an escaped character to its character class token.
func escapeToken(chr rune) (Token, error) {
	switch chr {
	case 'w':
		return Token{kind: tokenAnyLetter}, nil
	case 'd':
		return Token{kind: tokenAnyDigit}, nil
	}
	return Token{}, &LexError{Char: chr, Escaped: true}
}

// findToken returns the index of the first token of the given kind, or
// -1 if there is none.
func findToken(tokens []Token, kind tokenKind) int {
	for i, tok := range tokens {
		if tok.kind == kind {
			return i
		}
	}
	return -1
}

// findAdjacentValues returns the index splitting the first pair of
// adjacent tokens that concatenate: the first can end a left operand and
// the second can start a value. The index points at the second token.
func findAdjacentValues(tokens []Token) (int, bool) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].IsLeftValue() && tokens[i+1].IsValue() {
			return i + 1, true
		}
	}
	return 0, false
}
