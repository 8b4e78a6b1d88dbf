/*
File    : gomatch/lexer/lexer.go
*/

package lexer

import "strings"

// Lexer turns a Stream of characters into Tokens (§4.2). It holds exactly
// one character of lookahead (the character the Stream most recently
// yielded) and never rewinds.
type Lexer struct {
	stream  Stream
	current rune
}

// NewLexer wraps a Stream for tokenization. The first character is pulled
// immediately so NextToken can inspect it right away.
func NewLexer(s Stream) *Lexer {
	l := &Lexer{stream: s}
	l.current = s.Advance()
	return l
}

func (l *Lexer) advance() rune {
	l.current = l.stream.Advance()
	return l.current
}

func (l *Lexer) newToken(t TokenType, value interface{}, start Position) Token {
	return Token{Type: t, Value: value, Position: start}
}

// NextToken returns the next Token in the stream. Once EOF is reached,
// further calls keep returning EOF (§4.2). The returned error, when
// non-nil, is always an Error (one of the three variants in errors.go);
// the lexer does not attempt recovery, so callers should stop after a
// failure.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	start := l.stream.Pos()

	if tok, ok, err := l.tryOperatorOrComment(start); ok || err != nil {
		return tok, err
	}
	if tok, ok, err := l.tryString(start); ok || err != nil {
		return tok, err
	}
	if tok, ok := l.tryNumber(start); ok {
		return tok, nil
	}
	if tok, ok := l.tryIdentifierOrKeyword(start); ok {
		return tok, nil
	}
	if tok, ok := l.tryEOF(start); ok {
		return tok, nil
	}

	bad := l.current
	l.advance()
	return Token{}, &UnexpectedCharacterError{Char: bad, At: start}
}

func (l *Lexer) skipWhitespace() {
	for l.current == ' ' || l.current == '\t' || l.current == '\r' || l.current == '\n' {
		l.advance()
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

// tryOperatorOrComment handles every single- and two-character operator, the
// line-comment prefix, and the composite-operator fallback to a single
// character when the second character doesn't complete a known pair.
func (l *Lexer) tryOperatorOrComment(start Position) (Token, bool, error) {
	_, isSingle := singleCharTokens[l.current]
	isCompositeStart := l.current == '!' || l.current == '=' || l.current == '<' || l.current == '>'
	isCommentStart := l.current == '/'

	if !isSingle && !isCompositeStart && !isCommentStart {
		return Token{}, false, nil
	}
	if !isCompositeStart && !isCommentStart {
		t := singleCharTokens[l.current]
		l.advance()
		return l.newToken(t, nil, start), true, nil
	}

	first := l.current
	second := l.advance()
	lexeme := string(first) + string(second)

	if lexeme == commentPrefix {
		l.advance()
		return l.readComment(start), true, nil
	}
	if t, ok := compositeTokens[lexeme]; ok {
		l.advance()
		return l.newToken(t, nil, start), true, nil
	}
	if t, ok := singleCharTokens[first]; ok {
		// Second character didn't complete a composite; e.g. '=' followed by
		// '-'. Leave second as the current character, it starts the next
		// token.
		return l.newToken(t, nil, start), true, nil
	}
	return Token{}, true, &UnexpectedCharacterError{Char: first, At: start}
}

func (l *Lexer) readComment(start Position) Token {
	var b strings.Builder
	for l.current != 0 && l.current != '\n' {
		b.WriteRune(l.current)
		l.advance()
	}
	return l.newToken(COMMENT, b.String(), start)
}

// escapes maps a recognized escape character to the rune it produces.
var escapes = map[rune]rune{
	'n':  '\n',
	'b':  '\b',
	'r':  '\r',
	't':  '\t',
	'\\': '\\',
	'"':  '"',
}

func (l *Lexer) tryString(start Position) (Token, bool, error) {
	if l.current != '"' {
		return Token{}, false, nil
	}
	l.advance()

	var b strings.Builder
	for l.current != 0 && l.current != '"' {
		if l.current == '\\' {
			escPos := l.stream.Pos()
			l.advance()
			r, ok := escapes[l.current]
			if !ok {
				return Token{}, true, &InvalidEscapeSequenceError{Char: l.current, At: escPos}
			}
			b.WriteRune(r)
		} else {
			b.WriteRune(l.current)
		}
		l.advance()
	}
	if l.current == 0 {
		return Token{}, true, &UnterminatedStringError{At: start}
	}
	l.advance() // closing quote
	return l.newToken(STRING, b.String(), start), true, nil
}

// tryNumber accumulates the integer and fractional runs as they are scanned
// and combines them only at the end, matching the permissive leading-zero
// and trailing-dot rules (`000015` == 15, `15.` == 15.0).
func (l *Lexer) tryNumber(start Position) (Token, bool) {
	if !isDigit(l.current) {
		return Token{}, false
	}
	var integer int64
	for isDigit(l.current) {
		integer = integer*10 + int64(l.current-'0')
		l.advance()
	}

	if l.current != '.' {
		return l.newToken(NUMBER, integer, start), true
	}

	l.advance()
	var fraction float64
	var fractionLen int
	for isDigit(l.current) {
		fraction = fraction*10 + float64(l.current-'0')
		fractionLen++
		l.advance()
	}
	if fractionLen > 0 {
		fraction = fraction / pow10(fractionLen)
	}
	return l.newToken(NUMBER, float64(integer)+fraction, start), true
}

func pow10(n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func (l *Lexer) tryIdentifierOrKeyword(start Position) (Token, bool) {
	if !isAlpha(l.current) {
		return Token{}, false
	}
	var b strings.Builder
	for isAlphaNumeric(l.current) {
		b.WriteRune(l.current)
		l.advance()
	}
	name := b.String()
	if t, ok := keywords[name]; ok {
		return l.newToken(t, nil, start), true
	}
	return l.newToken(IDENTIFIER, name, start), true
}

func (l *Lexer) tryEOF(start Position) (Token, bool) {
	if l.current != 0 {
		return Token{}, false
	}
	return l.newToken(EOF, nil, start), true
}
