// lexer.go: whitespace-field tokenizer for RPN expressions
package rpn

import (
	"math"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Operands
	NUMBER

	// Arithmetic operators
	PLUS  // "+"
	MINUS // "-"
	MULT  // "*"
	DIV   // "/"
	POW   // "^"

	// Stack manipulation
	EXCH // "x" or "X", swaps the top two values

	// Memory
	STORE  // "!"
	RECALL // "@"

	// Introspection
	STACKDUMP // "?"
	MEMDUMP   // "&"
)

// Token is a classified field of the input expression.
type Token struct {
	Type   TokenType
	Lexeme string  // raw text slice
	Value  float64 // parsed value, set for NUMBER tokens only
	Index  int     // 0-based token ordinal within the expression
	Line   int     // 1-based
	Col    int     // 1-based
}

// operators maps a whole input field to its operator token type.
// Classification is by exact match on the complete field, so "-" is the
// subtraction operator while "-3" is a number.
var operators = map[string]TokenType{
	"+": PLUS,
	"-": MINUS,
	"*": MULT,
	"/": DIV,
	"^": POW,
	"x": EXCH,
	"X": EXCH,
	"!": STORE,
	"@": RECALL,
	"?": STACKDUMP,
	"&": MEMDUMP,
}

// Lexer scans an RPN expression string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source. A Lexer tokenizes one
// source string once; create a fresh one per input.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, value float64) Token {
	tok := Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Value:  value,
		Index:  len(l.tokens),
		Line:   l.tokStartLine,
		Col:    l.tokStartCol + 1,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.peek()
		if !ok || !isSpace(b) {
			return
		}
		l.advance()
		l.start = l.cur
	}
}

// scanField consumes a maximal run of non-whitespace bytes.
func (l *Lexer) scanField() string {
	for {
		b, ok := l.peek()
		if !ok || isSpace(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

func (l *Lexer) err(lexeme string) error {
	return &Error{
		Kind:   ErrMalformedToken,
		Lexeme: lexeme,
		Index:  len(l.tokens),
		Line:   l.tokStartLine,
		Col:    l.tokStartCol + 1,
	}
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF, 0), nil
	}

	field := l.scanField()

	if tt, ok := operators[field]; ok {
		return l.addToken(tt, 0), nil
	}

	v, convErr := strconv.ParseFloat(field, 64)
	if convErr != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Token{}, l.err(field)
	}
	return l.addToken(NUMBER, v), nil
}

// Scan tokenizes the entire source and returns tokens (EOF included).
// The same source always yields the same sequence; no state carries over
// between scans.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
