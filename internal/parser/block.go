package parser

import (
	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/token"
)

// Block forms are the open-ended expressions; each one's body is
// itself a BlockExpr, so a block extends as far right as it can and
// only a comma (or a closing delimiter) ends it:
//
//	'forall' ('{' Ident '}')+ BlockExpr
//	'func' '(' Ident ':' PairType ')' BlockExpr
//	'let' Ident (',' Ident)* [','] '=' PairExpr 'in' BlockExpr
//	'let_exists' '{' Ident (',' Ident)* [','] '}' Ident '=' PairExpr 'in' BlockExpr
//	'make_exists' '{' Ident '=' PairType (';' Ident '=' PairType)* [';'] '}'
//	              'of' '{' PairType '}' BlockExpr
//	'cast' '{' Ident '=' PairType '}' 'by' CallableExpr BlockExpr
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwForall:
		return p.parseForAllExpr()
	case token.KwFunc:
		return p.parseFuncExpr()
	case token.KwLet:
		return p.parseLetExpr()
	case token.KwLetExists:
		return p.parseLetExistsExpr()
	case token.KwMakeExists:
		return p.parseMakeExistsExpr()
	case token.KwCast:
		return p.parseCastExpr()
	default:
		return p.parseCallableExpr()
	}
}

// parseForAllExpr keeps the parameter groups as one flat list, unlike
// quantified types which desugar into nested binders.
func (p *Parser) parseForAllExpr() (ast.ExprID, bool) {
	kw := p.advance()
	params, ok := p.parseTypeParamGroups()
	if !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := kw.Span.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewForAll(span, params, body), true
}

func (p *Parser) parseFuncExpr() (ast.ExprID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'func'"); !ok {
		return ast.NoExprID, false
	}
	argName, ok := p.parseIdent()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter name"); !ok {
		return ast.NoExprID, false
	}
	argType, ok := p.parsePairType()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameter type"); !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := kw.Span.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewFunc(span, argName, argType, body), true
}

// parseLetExpr carries the one semantic check of the syntax layer: a
// binder list the grammar alone cannot keep non-empty.
func (p *Parser) parseLetExpr() (ast.ExprID, bool) {
	kw := p.advance()

	var names []ast.Ident
	for p.lx.Peek().IsName() {
		ident, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID, false
		}
		names = append(names, ident)
		if !p.at(token.Comma) {
			break
		}
		p.advance() // a trailing comma before '=' is fine
	}
	if len(names) == 0 {
		if p.at(token.Assign) {
			p.report(diag.SynEmptyLetBinding, diag.SevError, p.lx.Peek().Span,
				"'let' must bind at least one name")
		} else {
			p.err(diag.SynExpectName, "expected binding name after 'let', got "+describe(p.lx.Peek()))
		}
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after binding names"); !ok {
		return ast.NoExprID, false
	}
	val, ok := p.parsePairExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' after bound value"); !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := kw.Span.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewLet(span, names, val, body), true
}

func (p *Parser) parseLetExistsExpr() (ast.ExprID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'let_exists'"); !ok {
		return ast.NoExprID, false
	}

	// One or more witness names; requiring the first keeps the list
	// non-empty without a dedicated check.
	var typeNames []ast.Ident
	for {
		ident, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID, false
		}
		typeNames = append(typeNames, ident)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if !p.lx.Peek().IsName() {
			break // trailing comma
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after witness names"); !ok {
		return ast.NoExprID, false
	}

	valName, ok := p.parseIdent()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after payload name"); !ok {
		return ast.NoExprID, false
	}
	val, ok := p.parsePairExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' after unpacked value"); !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := kw.Span.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewLetExists(span, typeNames, valName, val, body), true
}

func (p *Parser) parseMakeExistsExpr() (ast.ExprID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'make_exists'"); !ok {
		return ast.NoExprID, false
	}

	var params []ast.ExistsParam
	for {
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after witness name"); !ok {
			return ast.NoExprID, false
		}
		ty, ok := p.parsePairType()
		if !ok {
			return ast.NoExprID, false
		}
		params = append(params, ast.ExistsParam{Name: name, Type: ty})
		if !p.at(token.Semicolon) {
			break
		}
		p.advance()
		if !p.lx.Peek().IsName() {
			break // trailing semicolon
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after witness bindings"); !ok {
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.KwOf, diag.SynUnexpectedToken, "expected 'of' after witness bindings"); !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'of'"); !ok {
		return ast.NoExprID, false
	}
	typeBody, ok := p.parsePairType()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after existential shape"); !ok {
		return ast.NoExprID, false
	}

	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := kw.Span.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewMakeExists(span, params, typeBody, body), true
}

// parseCastExpr binds exactly one type parameter; the proof sits at
// the callable level so the body after it stays unambiguous.
func (p *Parser) parseCastExpr() (ast.ExprID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'cast'"); !ok {
		return ast.NoExprID, false
	}
	param, ok := p.parseIdent()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after cast parameter"); !ok {
		return ast.NoExprID, false
	}
	typeBody, ok := p.parsePairType()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after cast shape"); !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.KwBy, diag.SynUnexpectedToken, "expected 'by' after cast shape"); !ok {
		return ast.NoExprID, false
	}
	proof, ok := p.parseCallableExpr()
	if !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := kw.Span.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewCast(span, ast.TypeParam{Name: param}, typeBody, proof, body), true
}
