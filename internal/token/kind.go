package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Name represents a plain identifier token.
	Name
	// QuotedName represents a backtick-quoted identifier token.
	// Text keeps the raw slice, backticks and escapes included.
	QuotedName
	// UIntLit represents an unsigned decimal integer literal.
	UIntLit

	// KwMove represents the 'move' keyword.
	KwMove // move
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwLetExists represents the 'let_exists' keyword.
	KwLetExists // let_exists
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwMakeExists represents the 'make_exists' keyword.
	KwMakeExists // make_exists
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwCast represents the 'cast' keyword.
	KwCast // cast
	// KwBy represents the 'by' keyword.
	KwBy // by
	// KwReflEquiv represents the 'refl_equiv' keyword.
	KwReflEquiv // refl_equiv
	// KwForall represents the 'forall' keyword.
	KwForall // forall
	// KwExists represents the 'exists' keyword.
	KwExists // exists
	// KwEquiv represents the 'equiv' keyword.
	KwEquiv // equiv

	// Hash represents the collision-id marker token.
	Hash // #
	// Comma represents the pair/list separator token.
	Comma // ,
	// Semicolon represents the binding separator token.
	Semicolon // ;
	// Assign represents the binding equals token.
	Assign // =
	// Colon represents the annotation colon token.
	Colon // :
	// Star is declared in the vocabulary but consumed by no production.
	Star // *
	// Arrow represents the function type arrow token.
	Arrow // ->
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Name:         "Name",
	QuotedName:   "QuotedName",
	UIntLit:      "UIntLit",
	KwMove:       "KwMove",
	KwFunc:       "KwFunc",
	KwLet:        "KwLet",
	KwLetExists:  "KwLetExists",
	KwIn:         "KwIn",
	KwMakeExists: "KwMakeExists",
	KwOf:         "KwOf",
	KwCast:       "KwCast",
	KwBy:         "KwBy",
	KwReflEquiv:  "KwReflEquiv",
	KwForall:     "KwForall",
	KwExists:     "KwExists",
	KwEquiv:      "KwEquiv",
	Hash:         "Hash",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Assign:       "Assign",
	Colon:        "Colon",
	Star:         "Star",
	Arrow:        "Arrow",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
