package lexer

import (
	"fmt"

	"lace/internal/diag"
	"lace/internal/token"
)

// scanPunct scans punctuation with maximal munch: two-byte sequences
// first ('->'), then single bytes. '--' never reaches here, comment
// trivia is collected before the scanners run.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	if lx.try2('-', '>') {
		return emit(token.Arrow)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '#':
		return emit(token.Hash)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case '=':
		return emit(token.Assign)
	case ':':
		return emit(token.Colon)
	case '*':
		return emit(token.Star)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
