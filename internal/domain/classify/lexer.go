package classify

import (
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokLParen
	tokRParen
	tokComma
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLT
	tokLE
	tokGT
	tokGE
	tokEQ
	tokNE
	tokAnd
	tokOr
)

var tokenNames = map[tokenKind]string{
	tokEOF:    "end of condition",
	tokNumber: "number",
	tokIdent:  "identifier",
	tokLParen: "'('",
	tokRParen: "')'",
	tokComma:  "','",
	tokPlus:   "'+'",
	tokMinus:  "'-'",
	tokStar:   "'*'",
	tokSlash:  "'/'",
	tokLT:     "'<'",
	tokLE:     "'<='",
	tokGT:     "'>'",
	tokGE:     "'>='",
	tokEQ:     "'=='",
	tokNE:     "'!='",
	tokAnd:    "'&&'",
	tokOr:     "'||'",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

// twoCharTokens are matched before single characters so "<=" is not read as "<".
var twoCharTokens = map[string]tokenKind{
	"<=": tokLE,
	">=": tokGE,
	"==": tokEQ,
	"!=": tokNE,
	"&&": tokAnd,
	"||": tokOr,
}

var oneCharTokens = map[byte]tokenKind{
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'<': tokLT,
	'>': tokGT,
}

// tokenize splits a condition into tokens. The input is treated as bytes;
// any byte outside the grammar, including non-ASCII, is a syntax error.
func tokenize(src string) ([]token, error) {
	tokens := make([]token, 0, len(src)/2+1)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' {
				i++
				if i >= len(src) || !isDigit(src[i]) {
					return nil, syntaxErrorf(start, "malformed number %q", src[start:i])
				}
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			text := src[start:i]
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, syntaxErrorf(start, "malformed number %q", text)
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, pos: start, num: n})
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			if i+1 < len(src) {
				if kind, ok := twoCharTokens[src[i:i+2]]; ok {
					tokens = append(tokens, token{kind: kind, text: src[i : i+2], pos: i})
					i += 2
					continue
				}
			}
			if kind, ok := oneCharTokens[c]; ok {
				tokens = append(tokens, token{kind: kind, text: src[i : i+1], pos: i})
				i++
				continue
			}
			switch c {
			case '=':
				return nil, syntaxErrorf(i, "assignment is not supported, use '=='")
			case '!':
				return nil, syntaxErrorf(i, "negation is not supported")
			case '&', '|':
				return nil, syntaxErrorf(i, "unsupported operator %q, use %q", string(c), string([]byte{c, c}))
			}
			return nil, syntaxErrorf(i, "unexpected character %q", string(c))
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(src)})
	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
