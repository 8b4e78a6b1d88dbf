/*
File    : gomatch/parser/statements.go
*/

package parser

import "github.com/gomatch-lang/gomatch/lexer"

// parseStatement implements the "statement" rule (§4.3).
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case lexer.FUNCTION:
		return p.parseFunctionDecl()
	case lexer.VAR, lexer.CONST:
		return p.parseVariableDecl()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.MATCH:
		return p.parseMatchStmt()
	default:
		return p.parseExpressionStmt()
	}
}

// parseStatementOrBlock implements the `(statement | block)` alternative
// used by if/while bodies (§4.3).
func (p *Parser) parseStatementOrBlock() (Stmt, error) {
	if p.current.Type == lexer.LEFT_BRACE {
		return p.parseBlock()
	}
	return p.parseStatement()
}

func (p *Parser) parseBlock() (*Block, error) {
	pos := p.current.Position
	if err := p.expect(lexer.LEFT_BRACE, "{"); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for p.current.Type != lexer.RIGHT_BRACE && p.current.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expect(lexer.RIGHT_BRACE, "}"); err != nil {
		return nil, err
	}
	return &Block{base{pos}, stmts}, nil
}

func (p *Parser) parseFunctionDecl() (*Function, error) {
	pos := p.current.Position
	if err := p.advance(); err != nil { // consume "fn"
		return nil, err
	}
	if p.current.Type != lexer.IDENTIFIER {
		return nil, &MissingIdentifierError{Context: "function name", At: p.current.Position}
	}
	name := identifierValue(p.current)
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN, "("); err != nil {
		return nil, err
	}
	var params []Parameter
	if p.current.Type != lexer.RIGHT_PAREN {
		var err error
		params, err = p.parseParameters()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, retag(err, "body for 'fn'", "MissingFunctionBody")
	}
	return &Function{base{pos}, name, params, body}, nil
}

// parseParameters parses a comma-separated, non-empty parameter list and
// rejects a repeated name with DuplicateParametersError (§4.3 "Duplicate-
// name checks").
func (p *Parser) parseParameters() ([]Parameter, error) {
	seen := map[string]bool{}
	var params []Parameter
	for {
		param, pos, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		if seen[param.Name] {
			return nil, &DuplicateParametersError{Name: param.Name, At: pos}
		}
		seen[param.Name] = true
		params = append(params, param)
		if p.current.Type != lexer.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func (p *Parser) parseParameter() (Parameter, lexer.Position, error) {
	isConst := false
	if p.current.Type == lexer.CONST {
		isConst = true
		if err := p.advance(); err != nil {
			return Parameter{}, lexer.Position{}, err
		}
	}
	if p.current.Type != lexer.IDENTIFIER {
		return Parameter{}, lexer.Position{}, &MissingIdentifierError{Context: "parameter", At: p.current.Position}
	}
	name := identifierValue(p.current)
	pos := p.current.Position
	if err := p.advance(); err != nil {
		return Parameter{}, lexer.Position{}, err
	}
	return Parameter{Name: name, IsConst: isConst}, pos, nil
}

func (p *Parser) parseVariableDecl() (*Variable, error) {
	isConst := p.current.Type == lexer.CONST
	pos := p.current.Position
	if err := p.advance(); err != nil { // consume "var"/"const"
		return nil, err
	}
	if p.current.Type != lexer.IDENTIFIER {
		return nil, &MissingIdentifierError{Context: "declaration", At: p.current.Position}
	}
	name := identifierValue(p.current)
	if err := p.advance(); err != nil {
		return nil, err
	}
	var expr Expr
	if p.current.Type == lexer.EQUAL {
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseLogicalOr()
		if err != nil {
			return nil, retag(err, "initializer for declaration", "MissingDeclarationExpression")
		}
		expr = e
	}
	if err := p.expect(lexer.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return &Variable{base{pos}, name, expr, isConst}, nil
}

func (p *Parser) parseIfStmt() (*If, error) {
	pos := p.current.Position
	if err := p.advance(); err != nil { // consume "if"
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, retag(err, "condition for 'if'", "MissingIfCondition")
	}
	if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementOrBlock()
	if err != nil {
		return nil, retag(err, "body for 'if'", "MissingIfBody")
	}
	var elseBody Stmt
	if p.current.Type == lexer.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBody, err = p.parseStatementOrBlock()
		if err != nil {
			return nil, retag(err, "body for 'else'", "MissingElseBody")
		}
	}
	return &If{base{pos}, cond, body, elseBody}, nil
}

func (p *Parser) parseWhileStmt() (*While, error) {
	pos := p.current.Position
	if err := p.advance(); err != nil { // consume "while"
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, retag(err, "condition for 'while'", "MissingWhileCondition")
	}
	if err := p.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementOrBlock()
	if err != nil {
		return nil, retag(err, "body for 'while'", "MissingWhileBody")
	}
	return &While{base{pos}, cond, body}, nil
}

func (p *Parser) parseReturnStmt() (*Return, error) {
	pos := p.current.Position
	if err := p.advance(); err != nil { // consume "return"
		return nil, err
	}
	var expr Expr
	if p.current.Type != lexer.SEMICOLON {
		e, err := p.parseExpression()
		if err != nil {
			return nil, retag(err, "expression for 'return'", "MissingReturnExpression")
		}
		expr = e
	}
	if err := p.expect(lexer.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return &Return{base{pos}, expr}, nil
}

func (p *Parser) parseExpressionStmt() (*Expression, error) {
	pos := p.current.Position
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return &Expression{base{pos}, expr}, nil
}
