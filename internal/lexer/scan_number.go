package lexer

import (
	"lace/internal/diag"
	"lace/internal/token"
)

// scanUInt scans a run of decimal digits. The grammar has exactly one
// numeric form, the non-negative collision id, so anything fancier
// (signs, bases, fractions) is rejected here.
func (lx *Lexer) scanUInt() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// "123abc" is a malformed literal, not two tokens.
	if isNameStart(lx.cursor.Peek()) {
		for isNameContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "name character directly after integer literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.UIntLit, Span: sp, Text: lx.text(sp)}
}
