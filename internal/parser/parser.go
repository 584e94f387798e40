package parser

import (
	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/lexer"
	"lace/internal/source"
	"lace/internal/token"
)

type Options struct {
	// MaxErrors caps reported errors; 0 means unlimited.
	MaxErrors uint
	Reporter  diag.Reporter
}

// Parser holds the state for one parse over one token stream. Parsing
// is single-pass with no backtracking: the first error aborts the
// entry point, there is no partial-AST recovery.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	opts     Options
	errors   uint
	lastSpan source.Span
}

func New(lx *lexer.Lexer, arenas *ast.Builder, opts Options) *Parser {
	return &Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
}

// ParseType consumes the whole token stream as a single type.
func ParseType(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.TypeID, bool) {
	p := New(lx, arenas, opts)
	id, ok := p.parsePairType()
	if !ok || !p.expectEOF() {
		return ast.NoTypeID, false
	}
	return id, true
}

// ParseExpr consumes the whole token stream as a single expression.
func ParseExpr(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.ExprID, bool) {
	p := New(lx, arenas, opts)
	id, ok := p.parsePairExpr()
	if !ok || !p.expectEOF() {
		return ast.NoExprID, false
	}
	return id, true
}

// ParseBareIdent consumes the stream as exactly one identifier,
// collision suffix included. It exists to exercise identifier lexing
// in isolation.
func ParseBareIdent(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.Ident, bool) {
	p := New(lx, arenas, opts)
	id, ok := p.parseIdent()
	if !ok || !p.expectEOF() {
		return ast.Ident{}, false
	}
	return id, true
}

// ParseNothing accepts a stream holding only trivia. It exists to
// exercise whitespace and comment handling in isolation.
func ParseNothing(lx *lexer.Lexer, opts Options) bool {
	p := New(lx, nil, opts)
	return p.expectEOF()
}

func (p *Parser) expectEOF() bool {
	if p.at(token.EOF) {
		return p.errors == 0
	}
	p.err(diag.SynTrailingInput, "expected end of input, got "+describe(p.lx.Peek()))
	return false
}
