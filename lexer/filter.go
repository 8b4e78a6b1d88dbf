/*
File    : gomatch/lexer/filter.go
*/

package lexer

// TokenSource is anything that yields tokens one at a time, implemented by
// both *Lexer and *FilteredLexer so the parser can consume either.
type TokenSource interface {
	NextToken() (Token, error)
}

// FilteredLexer is a stateless adapter over a Lexer that drops COMMENT
// tokens, so audit tooling (which wants comments) and the parser (which
// doesn't) can share one Lexer implementation without duplicating its
// scanning logic.
type FilteredLexer struct {
	inner *Lexer
}

// NewFilteredLexer wraps lex, suppressing every COMMENT token it produces.
func NewFilteredLexer(lex *Lexer) *FilteredLexer {
	return &FilteredLexer{inner: lex}
}

// NextToken returns the next non-COMMENT token, or the first error the
// underlying Lexer raises.
func (f *FilteredLexer) NextToken() (Token, error) {
	for {
		tok, err := f.inner.NextToken()
		if err != nil {
			return Token{}, err
		}
		if tok.Type != COMMENT {
			return tok, nil
		}
	}
}
