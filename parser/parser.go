/*
File    : gomatch/parser/parser.go
*/

package parser

import (
	"github.com/gomatch-lang/gomatch/lexer"
)

// Parser consumes tokens from a lexer.TokenSource (ordinarily a
// *lexer.FilteredLexer, so comments never reach the grammar) and produces
// a Program (§4.3). It holds exactly one token of lookahead plus a
// fixed-capacity-one push-back slot used to disambiguate assignment from a
// bare identifier expression.
type Parser struct {
	tokens     lexer.TokenSource
	current    lexer.Token
	pending    lexer.Token
	hasPending bool
}

// New creates a Parser over tokens and primes its first lookahead token.
//
// Parameters:
//   - tokens: the token source to parse; normally a *lexer.FilteredLexer
//     wrapping a *lexer.Lexer, so whitespace/comment tokens never reach
//     the grammar below.
//
// Returns:
//   - *Parser: ready for Parse(), with its first token already loaded.
//   - error: whatever the first NextToken() call returns (e.g. an
//     unterminated string literal at position 0).
//
// Example usage:
//
//	lx := lexer.NewFilteredLexer(lexer.NewLexer(lexer.NewTextStream(src)))
//	p, err := parser.New(lx)
func New(tokens lexer.TokenSource) (*Parser, error) {
	p := &Parser{tokens: tokens}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse consumes the entire token stream and returns the resulting
// Program.
//
// Returns:
//   - *Program: the top-level statement list, in source order.
//   - error: an Error (MissingToken, MissingConstruct, MissingIdentifier,
//     DuplicateParameters, DuplicatePatternNames, or InvalidSyntax) at
//     the first malformed construct encountered; parsing stops there
//     rather than attempting recovery.
//
// Example usage:
//
//	p, _ := parser.New(lx)
//	prog, err := p.Parse()
func (p *Parser) Parse() (*Program, error) {
	var stmts []Stmt
	for p.current.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if p.current.Type != lexer.EOF {
		return nil, &InvalidSyntaxError{Message: "Expected end of input.", At: p.current.Position}
	}
	return &Program{Statements: stmts}, nil
}

// advance consumes the current token and loads the next one, preferring a
// pending push-back token over pulling a fresh one from the lexer.
func (p *Parser) advance() error {
	if p.hasPending {
		p.current = p.pending
		p.hasPending = false
		return nil
	}
	tok, err := p.tokens.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// pushBack buffers tok to be returned by the next advance() call, and
// restores restore as the current token. The queue holds at most one
// token; calling pushBack twice without an intervening advance is a parser
// bug (§9 "Parser push-back").
func (p *Parser) pushBack(tok lexer.Token, restore lexer.Token) {
	p.pending = tok
	p.hasPending = true
	p.current = restore
}

// expect requires the current token to have type tt (rendered as lexeme in
// diagnostics), consuming it on success.
func (p *Parser) expect(tt lexer.TokenType, lexeme string) error {
	if p.current.Type != tt {
		return &MissingTokenError{Expected: lexeme, At: p.current.Position}
	}
	return p.advance()
}

// identifierValue extracts the IDENTIFIER token's string payload.
func identifierValue(tok lexer.Token) string {
	if s, ok := tok.Value.(string); ok {
		return s
	}
	return ""
}
