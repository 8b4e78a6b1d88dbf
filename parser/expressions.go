/*
File    : gomatch/parser/expressions.go
*/

package parser

import "github.com/gomatch-lang/gomatch/lexer"

// parseExpression is the grammar's "expression" rule: assignment.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAssignment()
}

// parseAssignment disambiguates `IDENT "=" logical_or` from a bare
// `logical_or` using the one-slot push-back queue (§4.3 "Assignment
// disambiguation"): it tentatively consumes an IDENT, peeks the following
// token, and either commits to an assignment or restores the IDENT and
// falls through.
func (p *Parser) parseAssignment() (Expr, error) {
	if p.current.Type == lexer.IDENTIFIER {
		identTok := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.Type == lexer.EQUAL {
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseLogicalOr()
			if err != nil {
				return nil, retag(err, "expression for assignment", "MissingAssignmentExpression")
			}
			return &Assignment{base{identTok.Position}, identifierValue(identTok), value}, nil
		}
		// Not an assignment: restore the identifier as current and push the
		// token we peeked at back onto the one-slot queue.
		peeked := p.current
		p.pushBack(peeked, identTok)
	}
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (Expr, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.OR {
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &Logical{base{pos}, left, LogicalOr, right}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.AND {
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &Logical{base{pos}, left, LogicalAnd, right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.EQUAL_EQUAL || p.current.Type == lexer.BANG_EQUAL {
		op := OpEq
		if p.current.Type == lexer.BANG_EQUAL {
			op = OpNeq
		}
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Binary{base{pos}, left, op, right}
	}
	return left, nil
}

// parseComparison implements the non-associative "comparison" rule: at
// most one of `< <= > >=` may appear (§4.3 grammar comment).
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOp(p.current.Type)
	if !ok {
		return left, nil
	}
	pos := p.current.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &Binary{base{pos}, left, op, right}, nil
}

func comparisonOp(tt lexer.TokenType) (BinaryOp, bool) {
	switch tt {
	case lexer.LESS:
		return OpLt, true
	case lexer.LESS_EQUAL:
		return OpLte, true
	case lexer.GREATER:
		return OpGt, true
	case lexer.GREATER_EQUAL:
		return OpGte, true
	}
	return 0, false
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.PLUS || p.current.Type == lexer.MINUS {
		op := OpAdd
		if p.current.Type == lexer.MINUS {
			op = OpSub
		}
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Binary{base{pos}, left, op, right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.STAR || p.current.Type == lexer.SLASH {
		op := OpMul
		if p.current.Type == lexer.SLASH {
			op = OpDiv
		}
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{base{pos}, left, op, right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.current.Type == lexer.MINUS || p.current.Type == lexer.NOT {
		op := UnaryMinus
		if p.current.Type == lexer.NOT {
			op = UnaryNot
		}
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{base{pos}, op, right}, nil
	}
	return p.parseCall()
}

// parseCall parses primary() followed by zero or more call suffixes,
// supporting chained calls like `make(1)(2)` (§4.3 "call").
func (p *Parser) parseCall() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.LEFT_PAREN {
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		var args []Expr
		if p.current.Type != lexer.RIGHT_PAREN {
			args, err = p.parseArguments()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
			return nil, err
		}
		expr = &Call{base{pos}, expr, args}
	}
	return expr, nil
}

// parseArguments parses a comma-separated, non-empty expression list.
func (p *Parser) parseArguments() ([]Expr, error) {
	var args []Expr
	first, err := p.parseExpression()
	if err != nil {
		return nil, retag(err, "argument", "MissingArgument")
	}
	args = append(args, first)
	for p.current.Type == lexer.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseExpression()
		if err != nil {
			return nil, retag(err, "argument", "MissingArgument")
		}
		args = append(args, next)
	}
	return args, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.current
	switch tok.Type {
	case lexer.NUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{base{tok.Position}, tok.Value}, nil
	case lexer.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{base{tok.Position}, tok.Value}, nil
	case lexer.TRUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{base{tok.Position}, true}, nil
	case lexer.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{base{tok.Position}, false}, nil
	case lexer.NIL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{base{tok.Position}, nil}, nil
	case lexer.IDENTIFIER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Identifier{base{tok.Position}, identifierValue(tok)}, nil
	case lexer.LEFT_PAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
			return nil, err
		}
		return &Grouping{base{tok.Position}, inner}, nil
	}
	return nil, missingExpr(tok.Position)
}
