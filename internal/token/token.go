package token

import (
	"lace/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsName reports whether the token carries an identifier, plain or quoted.
func (t Token) IsName() bool {
	return t.Kind == Name || t.Kind == QuotedName
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwMove, KwFunc, KwLet, KwLetExists, KwIn, KwMakeExists,
		KwOf, KwCast, KwBy, KwReflEquiv, KwForall, KwExists, KwEquiv:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Hash, Comma, Semicolon, Assign, Colon, Star, Arrow,
		LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}
