package parser

import (
	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/token"
)

// The type grammar is a precedence ladder, tightest to loosest:
//
//	AtomicType     ::= '(' ')' | '(' PairType ')' | Ident
//	AppType        ::= AtomicType AtomicType*            (left-assoc)
//	                 | 'equiv' AtomicType AtomicType
//	QuantifiedType ::= ('forall' | 'exists') ('{' Ident '}')+ QuantifiedType
//	                 | AppType ['->' QuantifiedType]     (left side atomic)
//	PairType       ::= QuantifiedType [',' [PairType]]   (right-assoc)

func startsAtomicType(k token.Kind) bool {
	switch k {
	case token.LParen, token.Name, token.QuotedName:
		return true
	default:
		return false
	}
}

func startsType(k token.Kind) bool {
	switch k {
	case token.KwForall, token.KwExists, token.KwEquiv:
		return true
	default:
		return startsAtomicType(k)
	}
}

func (p *Parser) parseAtomicType() (ast.TypeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LParen:
		p.advance()
		if p.at(token.RParen) {
			closing := p.advance()
			return p.arenas.Types.NewUnit(tok.Span.Cover(closing.Span)), true
		}
		inner, ok := p.parsePairType()
		if !ok {
			return ast.NoTypeID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close type"); !ok {
			return ast.NoTypeID, false
		}
		return inner, true
	case token.Name, token.QuotedName:
		ident, ok := p.parseIdent()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewVar(ident.Span, ident), true
	case token.EOF:
		p.err(diag.SynUnexpectedEOF, "expected type, got end of input")
		return ast.NoTypeID, false
	default:
		p.err(diag.SynExpectType, "expected type, got "+describe(tok))
		return ast.NoTypeID, false
	}
}

// parseAppType also reports whether the result is a single atom, which
// decides whether it may stand left of an arrow.
func (p *Parser) parseAppType() (id ast.TypeID, atomic bool, ok bool) {
	if p.at(token.KwEquiv) {
		kw := p.advance()
		orig, ok := p.parseAtomicType()
		if !ok {
			return ast.NoTypeID, false, false
		}
		dest, ok := p.parseAtomicType()
		if !ok {
			return ast.NoTypeID, false, false
		}
		span := kw.Span.Cover(p.typeSpan(dest))
		return p.arenas.Types.NewEquiv(span, orig, dest), false, true
	}

	left, ok := p.parseAtomicType()
	if !ok {
		return ast.NoTypeID, false, false
	}
	atomic = true
	for startsAtomicType(p.lx.Peek().Kind) {
		arg, ok := p.parseAtomicType()
		if !ok {
			return ast.NoTypeID, false, false
		}
		span := p.typeSpan(left).Cover(p.typeSpan(arg))
		left = p.arenas.Types.NewApp(span, left, arg)
		atomic = false
	}
	return left, atomic, true
}

func (p *Parser) parseQuantifiedType() (ast.TypeID, bool) {
	if p.atOr(token.KwForall, token.KwExists) {
		kw := p.advance()
		quant := ast.QuantExists
		if kw.Kind == token.KwForall {
			quant = ast.QuantForAll
		}
		params, ok := p.parseTypeParamGroups()
		if !ok {
			return ast.NoTypeID, false
		}
		body, ok := p.parseQuantifiedType()
		if !ok {
			return ast.NoTypeID, false
		}
		// The first declared parameter becomes the outermost binder.
		end := p.typeSpan(body)
		for i := len(params) - 1; i > 0; i-- {
			body = p.arenas.Types.NewQuantified(params[i].Name.Span.Cover(end), quant, params[i], body)
		}
		return p.arenas.Types.NewQuantified(kw.Span.Cover(end), quant, params[0], body), true
	}

	left, atomic, ok := p.parseAppType()
	if !ok {
		return ast.NoTypeID, false
	}
	if !p.at(token.Arrow) {
		return left, true
	}
	if !atomic {
		p.report(diag.SynFuncArgNotAtomic, diag.SevError, p.typeSpan(left),
			"argument type of '->' must be atomic; parenthesize it")
		return ast.NoTypeID, false
	}
	p.advance()
	ret, ok := p.parseQuantifiedType()
	if !ok {
		return ast.NoTypeID, false
	}
	span := p.typeSpan(left).Cover(p.typeSpan(ret))
	return p.arenas.Types.NewFunc(span, left, ret), true
}

// parseTypeParamGroups eats one or more '{Name}' groups.
func (p *Parser) parseTypeParamGroups() ([]ast.TypeParam, bool) {
	var params []ast.TypeParam
	for p.at(token.LBrace) {
		p.advance()
		ident, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after type parameter"); !ok {
			return nil, false
		}
		params = append(params, ast.TypeParam{Name: ident})
	}
	if len(params) == 0 {
		p.err(diag.SynUnexpectedToken, "expected '{' opening a type parameter, got "+describe(p.lx.Peek()))
		return nil, false
	}
	return params, true
}

func (p *Parser) parsePairType() (ast.TypeID, bool) {
	left, ok := p.parseQuantifiedType()
	if !ok {
		return ast.NoTypeID, false
	}
	if !p.at(token.Comma) {
		return left, true
	}
	p.advance()
	if !startsType(p.lx.Peek().Kind) {
		// Trailing comma, tolerated.
		return left, true
	}
	right, ok := p.parsePairType()
	if !ok {
		return ast.NoTypeID, false
	}
	span := p.typeSpan(left).Cover(p.typeSpan(right))
	return p.arenas.Types.NewPair(span, left, right), true
}
