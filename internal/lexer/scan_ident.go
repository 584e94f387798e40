package lexer

import (
	"lace/internal/diag"
	"lace/internal/token"
)

// scanNameOrKeyword scans [A-Za-z_][A-Za-z_0-9]* and checks the result
// against the keyword table. Token.Text is exactly the source slice.
func (lx *Lexer) scanNameOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isNameContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Name, Span: sp, Text: text}
}

// scanQuotedName scans a backtick-quoted name. A backslash makes the
// following byte part of the name unconditionally, so `\`` and `\\`
// stay inside the quotes. Text keeps the raw slice with backticks;
// unquoting happens at identifier recognition in the parser.
func (lx *Lexer) scanQuotedName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '`' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.QuotedName, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedName, sp, "newline in quoted name")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedName, sp, "unterminated quoted name")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
