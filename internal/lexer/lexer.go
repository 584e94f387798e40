package lexer

import (
	"lace/internal/source"
	"lace/internal/token"
)

// Lexer turns one source file into the token stream declared by the
// grammar: names, quoted names, unsigned integers, keywords, and
// punctuation, with leading trivia attached to each token.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // collected leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind:    token.EOF,
			Span:    lx.EmptySpan(),
			Leading: lx.takeHold(),
		}
	}

	var tok token.Token
	switch ch := lx.cursor.Peek(); {
	case isNameStart(ch):
		tok = lx.scanNameOrKeyword()
	case ch == '`':
		tok = lx.scanQuotedName()
	case isDec(ch):
		tok = lx.scanUInt()
	default:
		tok = lx.scanPunct()
	}

	tok.Leading = lx.takeHold()
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is the zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File exposes the underlying source file.
func (lx *Lexer) File() *source.File {
	return lx.file
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
