package lexer

import (
	"lace/internal/diag"
	"lace/internal/source"
)

// Options configures a Lexer. A nil Reporter drops diagnostics but
// lexing continues regardless.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
