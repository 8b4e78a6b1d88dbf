/*
File    : gomatch/parser/patterns.go
*/

package parser

import "github.com/gomatch-lang/gomatch/lexer"

// parseMatchStmt parses a "match (args) { case ... }" statement.
//
// Returns:
//   - *Match: the arguments and cases in source order.
//   - error: MissingToken if a "(", ")", or "{"/"}" delimiter is absent,
//     or whatever parseCase returns for a malformed case.
//
// Example usage:
//
//	match (x, y) {
//	    (Num, Num): print("both numbers");
//	    (_, _): print("something else");
//	}
func (p *Parser) parseMatchStmt() (*Match, error) {
	pos := p.current.Position
	if err := p.advance(); err != nil { // consume "match"
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN, "("); err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LEFT_BRACE, "{"); err != nil {
		return nil, err
	}
	var cases []*Case
	for p.current.Type != lexer.RIGHT_BRACE && p.current.Type != lexer.EOF {
		c, err := p.parseCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := p.expect(lexer.RIGHT_BRACE, "}"); err != nil {
		return nil, err
	}
	return &Match{base{pos}, args, cases}, nil
}

// parseCase parses one case arm and rejects a name bound by "as" more than
// once across its pattern list (§4.3 "Duplicate-name checks").
func (p *Parser) parseCase() (*Case, error) {
	pos := p.current.Position
	if err := p.expect(lexer.LEFT_PAREN, "("); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	checkDup := func(pe *PatternExpr) error {
		if !pe.HasName {
			return nil
		}
		if seen[pe.Name] {
			return &DuplicatePatternNamesError{Name: pe.Name, At: pe.Pos()}
		}
		seen[pe.Name] = true
		return nil
	}

	first, err := p.parsePatternExpr()
	if err != nil {
		return nil, err
	}
	if err := checkDup(first); err != nil {
		return nil, err
	}
	patterns := []*PatternExpr{first}
	for p.current.Type == lexer.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parsePatternExpr()
		if err != nil {
			return nil, err
		}
		if err := checkDup(next); err != nil {
			return nil, err
		}
		patterns = append(patterns, next)
	}
	if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}

	var guard Expr
	if p.current.Type == lexer.IF {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.LEFT_PAREN, "("); err != nil {
			return nil, err
		}
		g, err := p.parseExpression()
		if err != nil {
			return nil, retag(err, "condition for guard", "MissingGuardCondition")
		}
		if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
			return nil, err
		}
		guard = g
	}

	if err := p.expect(lexer.COLON, ":"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementOrBlock()
	if err != nil {
		return nil, retag(err, "body for 'case'", "MissingCaseBody")
	}
	return &Case{base{pos}, patterns, guard, body}, nil
}

// parsePatternExpr parses `("_" | pattern) ["as" IDENT]` (§4.3).
func (p *Parser) parsePatternExpr() (*PatternExpr, error) {
	pos := p.current.Position
	var pattern Expr
	if p.current.Type == lexer.IDENTIFIER && identifierValue(p.current) == "_" {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		pat, err := p.parseOrPattern()
		if err != nil {
			return nil, retag(err, "pattern", "MissingPattern")
		}
		pattern = pat
	}

	pe := &PatternExpr{base{pos}, pattern, "", false}
	if p.current.Type == lexer.AS {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.Type != lexer.IDENTIFIER {
			return nil, &MissingIdentifierError{Context: "as-binding", At: p.current.Position}
		}
		pe.Name = identifierValue(p.current)
		pe.HasName = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return pe, nil
}

func (p *Parser) parseOrPattern() (Expr, error) {
	left, err := p.parseAndPattern()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.OR {
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAndPattern()
		if err != nil {
			return nil, err
		}
		left = &Logical{base{pos}, left, LogicalOr, right}
	}
	return left, nil
}

func (p *Parser) parseAndPattern() (Expr, error) {
	left, err := p.parseClosedPattern()
	if err != nil {
		return nil, err
	}
	for p.current.Type == lexer.AND {
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseClosedPattern()
		if err != nil {
			return nil, err
		}
		left = &Logical{base{pos}, left, LogicalAnd, right}
	}
	return left, nil
}

var typePatternKeywords = map[lexer.TokenType]PatternType{
	lexer.STRING_TYPE:   PatternStr,
	lexer.NUMBER_TYPE:   PatternNum,
	lexer.BOOL_TYPE:     PatternBool,
	lexer.FUNCTION_TYPE: PatternFunc,
	lexer.NIL_TYPE:      PatternNil,
}

func (p *Parser) parseClosedPattern() (Expr, error) {
	if pt, ok := typePatternKeywords[p.current.Type]; ok {
		pos := p.current.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &TypePattern{base{pos}, pt}, nil
	}
	return p.parseComparePattern()
}

var comparePatternOps = map[lexer.TokenType]CompareOp{
	lexer.BANG_EQUAL:    CompareNeq,
	lexer.LESS:          CompareLt,
	lexer.LESS_EQUAL:    CompareLte,
	lexer.GREATER:       CompareGt,
	lexer.GREATER_EQUAL: CompareGte,
}

// parseComparePattern parses `[ "!=" | "<" | "<=" | ">" | ">=" ] unary`; a
// bare unary with no explicit operator means "==" (§4.3).
func (p *Parser) parseComparePattern() (Expr, error) {
	pos := p.current.Position
	op := CompareEq
	if explicit, ok := comparePatternOps[p.current.Type]; ok {
		op = explicit
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ComparePattern{base{pos}, op, right}, nil
}
