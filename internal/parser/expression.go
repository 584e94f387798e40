package parser

import (
	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/token"
)

// The expression ladder mirrors the type ladder:
//
//	AtomicExpr   ::= '(' ')' | '(' PairExpr ')' | ['move'] Ident
//	CallableExpr ::= (AtomicExpr | 'refl_equiv' '{' PairType '}')
//	                 ('(' [PairExpr] ')' | ('{' PairType '}')+)*
//	BlockExpr    ::= forall | func | let | let_exists | make_exists
//	               | cast | CallableExpr             (see block.go)
//	PairExpr     ::= BlockExpr [',' [PairExpr]]      (right-assoc)
//
// Application takes its argument in explicit parentheses, so 'f(a)(b)'
// nests left through the postfix loop; juxtaposition means nothing at
// the expression level.

func startsExpr(k token.Kind) bool {
	switch k {
	case token.LParen, token.Name, token.QuotedName, token.KwMove,
		token.KwReflEquiv, token.KwForall, token.KwFunc, token.KwLet,
		token.KwLetExists, token.KwMakeExists, token.KwCast:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtomicExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LParen:
		p.advance()
		if p.at(token.RParen) {
			closing := p.advance()
			return p.arenas.Exprs.NewUnit(tok.Span.Cover(closing.Span)), true
		}
		inner, ok := p.parsePairExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close expression"); !ok {
			return ast.NoExprID, false
		}
		return inner, true
	case token.KwMove:
		kw := p.advance()
		ident, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewVar(kw.Span.Cover(ident.Span), ast.UsageMove, ident), true
	case token.Name, token.QuotedName:
		ident, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewVar(ident.Span, ast.UsageCopy, ident), true
	case token.EOF:
		p.err(diag.SynUnexpectedEOF, "expected expression, got end of input")
		return ast.NoExprID, false
	default:
		p.err(diag.SynExpectExpr, "expected expression, got "+describe(tok))
		return ast.NoExprID, false
	}
}

func (p *Parser) parseCallableExpr() (ast.ExprID, bool) {
	var recv ast.ExprID
	if p.at(token.KwReflEquiv) {
		kw := p.advance()
		if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'refl_equiv'"); !ok {
			return ast.NoExprID, false
		}
		ty, ok := p.parsePairType()
		if !ok {
			return ast.NoExprID, false
		}
		closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after type")
		if !ok {
			return ast.NoExprID, false
		}
		recv = p.arenas.Exprs.NewReflEquiv(kw.Span.Cover(closing.Span), ty)
	} else {
		var ok bool
		recv, ok = p.parseAtomicExpr()
		if !ok {
			return ast.NoExprID, false
		}
	}
	return p.parsePostfix(recv)
}

// parsePostfix folds call arguments and instantiation groups onto the
// receiver. Consecutive '{T}' groups land in one flat Inst node;
// applications nest one node per argument.
func (p *Parser) parsePostfix(recv ast.ExprID) (ast.ExprID, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			open := p.advance()
			var arg ast.ExprID
			if p.at(token.RParen) {
				arg = p.arenas.Exprs.NewUnit(open.Span.Cover(p.lx.Peek().Span))
			} else {
				var ok bool
				arg, ok = p.parsePairExpr()
				if !ok {
					return ast.NoExprID, false
				}
			}
			closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call argument")
			if !ok {
				return ast.NoExprID, false
			}
			recv = p.arenas.Exprs.NewApp(p.exprSpan(recv).Cover(closing.Span), recv, arg)
		case token.LBrace:
			var args []ast.TypeID
			end := p.lx.Peek().Span
			for p.at(token.LBrace) {
				p.advance()
				ty, ok := p.parsePairType()
				if !ok {
					return ast.NoExprID, false
				}
				closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after type argument")
				if !ok {
					return ast.NoExprID, false
				}
				args = append(args, ty)
				end = closing.Span
			}
			recv = p.arenas.Exprs.NewInst(p.exprSpan(recv).Cover(end), recv, args)
		default:
			return recv, true
		}
	}
}

func (p *Parser) parsePairExpr() (ast.ExprID, bool) {
	left, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Comma) {
		return left, true
	}
	p.advance()
	if !startsExpr(p.lx.Peek().Kind) {
		// Trailing comma, tolerated.
		return left, true
	}
	right, ok := p.parsePairExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(left).Cover(p.exprSpan(right))
	return p.arenas.Exprs.NewPair(span, left, right), true
}
