package diag

import "fmt"

// Code identifies one diagnostic kind. Lexical codes live in the 1000
// range, syntax codes in the 2000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar      Code = 1001
	LexUnterminatedName Code = 1002
	LexBadNumber        Code = 1003

	// Syntax
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002
	SynExpectName      Code = 2003
	SynExpectType      Code = 2004
	SynExpectExpr      Code = 2005
	SynUnclosedParen   Code = 2006
	SynUnclosedBrace   Code = 2007
	// SynEmptyLetBinding is the one semantic rejection in the syntax
	// layer: a 'let' that binds no names. Kept as its own code so
	// callers can special-case it in diagnostics.
	SynEmptyLetBinding  Code = 2008
	SynFuncArgNotAtomic Code = 2009
	SynExpectCollision  Code = 2010
	SynTrailingInput    Code = 2011
)

var codeNames = map[Code]string{
	UnknownCode:         "unknown",
	LexUnknownChar:      "lex-unknown-char",
	LexUnterminatedName: "lex-unterminated-name",
	LexBadNumber:        "lex-bad-number",
	SynUnexpectedToken:  "syn-unexpected-token",
	SynUnexpectedEOF:    "syn-unexpected-eof",
	SynExpectName:       "syn-expect-name",
	SynExpectType:       "syn-expect-type",
	SynExpectExpr:       "syn-expect-expr",
	SynUnclosedParen:    "syn-unclosed-paren",
	SynUnclosedBrace:    "syn-unclosed-brace",
	SynEmptyLetBinding:  "syn-empty-let-binding",
	SynFuncArgNotAtomic: "syn-func-arg-not-atomic",
	SynExpectCollision:  "syn-expect-collision-id",
	SynTrailingInput:    "syn-trailing-input",
}

// ID returns the stable machine-readable identifier, e.g. "LACE2008".
func (c Code) ID() string {
	return fmt.Sprintf("LACE%04d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code-%04d", uint16(c))
}

// IsLexical reports whether the code belongs to the lexer.
func (c Code) IsLexical() bool {
	return c >= 1000 && c < 2000
}
