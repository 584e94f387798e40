package parser

import (
	"strconv"
	"strings"

	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/token"
)

// parseIdent recognizes one identifier: a plain or quoted name with an
// optional '#<uint>' collision suffix. The suffix is recorded verbatim
// with no uniqueness policy; absence means collision id 0.
func (p *Parser) parseIdent() (ast.Ident, bool) {
	tok := p.lx.Peek()
	if !tok.IsName() {
		p.err(diag.SynExpectName, "expected name, got "+describe(tok))
		return ast.Ident{}, false
	}
	p.advance()

	text := tok.Text
	if tok.Kind == token.QuotedName {
		text = Unquote(text)
	}
	id := ast.Ident{
		Name: p.arenas.StringsInterner.Intern(text),
		Span: tok.Span,
	}

	if p.at(token.Hash) {
		p.advance()
		num, ok := p.expect(token.UIntLit, diag.SynExpectCollision, "expected collision id after '#'")
		if !ok {
			return ast.Ident{}, false
		}
		n, convErr := strconv.ParseUint(num.Text, 10, 32)
		if convErr != nil {
			p.report(diag.SynExpectCollision, diag.SevError, num.Span,
				"collision id "+num.Text+" does not fit 32 bits")
			return ast.Ident{}, false
		}
		id.CollisionID = uint32(n)
		id.Span = id.Span.Cover(num.Span)
	}
	return id, true
}

// Unquote strips the backticks off a quoted name and resolves escapes:
// a backslash drops itself and keeps the following byte verbatim,
// whatever it is.
func Unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			i++
			if i == len(body) {
				break
			}
		}
		sb.WriteByte(body[i])
	}
	return sb.String()
}
