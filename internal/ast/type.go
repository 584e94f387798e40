package ast

import "lace/internal/source"

// TypeKind tags the closed set of type nodes.
type TypeKind uint8

const (
	// TypeUnit is the nullary type '()'.
	TypeUnit TypeKind = iota
	// TypeVar is a reference to a type variable.
	TypeVar
	// TypeApp is left-associative type application by juxtaposition.
	TypeApp
	// TypeEquiv is the proposition 'equiv A B' over two atomic types.
	TypeEquiv
	// TypeFunc is 'A -> B' with an atomic argument type.
	TypeFunc
	// TypeQuantified binds exactly one type parameter; chains of
	// '{a} {b}' groups desugar into nested nodes.
	TypeQuantified
	// TypePair is the right-associative product 'A, B'.
	TypePair
)

func (k TypeKind) String() string {
	switch k {
	case TypeUnit:
		return "Unit"
	case TypeVar:
		return "Var"
	case TypeApp:
		return "App"
	case TypeEquiv:
		return "Equiv"
	case TypeFunc:
		return "Func"
	case TypeQuantified:
		return "Quantified"
	case TypePair:
		return "Pair"
	}
	return "Type(?)"
}

// Quantifier selects between existential and universal binding.
type Quantifier uint8

const (
	QuantExists Quantifier = iota
	QuantForAll
)

func (q Quantifier) String() string {
	if q == QuantForAll {
		return "forall"
	}
	return "exists"
}

// Type is the per-node header; payloads live in per-kind arenas.
type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}
