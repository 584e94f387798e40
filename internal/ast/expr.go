package ast

import "lace/internal/source"

// ExprKind tags the closed set of expression nodes.
type ExprKind uint8

const (
	// ExprUnit is the unit value '()'.
	ExprUnit ExprKind = iota
	// ExprVar is a variable use with its copy/move marker.
	ExprVar
	// ExprApp is application with an explicitly parenthesized argument.
	ExprApp
	// ExprInst instantiates a polymorphic value with '{T}' groups,
	// stored as one flat sequence in source order.
	ExprInst
	// ExprReflEquiv is 'refl_equiv {T}', the reflexivity proof.
	ExprReflEquiv
	// ExprForAll introduces universally quantified type parameters.
	ExprForAll
	// ExprFunc is a single-argument lambda with a type annotation.
	ExprFunc
	// ExprLet destructures a value into one or more names.
	ExprLet
	// ExprLetExists unpacks an existential's witnesses and payload.
	ExprLetExists
	// ExprMakeExists packs witness types with a body expression.
	ExprMakeExists
	// ExprCast reinterprets a body's type via an equivalence proof.
	ExprCast
	// ExprPair is the right-associative value pair.
	ExprPair
)

func (k ExprKind) String() string {
	switch k {
	case ExprUnit:
		return "Unit"
	case ExprVar:
		return "Var"
	case ExprApp:
		return "App"
	case ExprInst:
		return "Inst"
	case ExprReflEquiv:
		return "ReflEquiv"
	case ExprForAll:
		return "ForAll"
	case ExprFunc:
		return "Func"
	case ExprLet:
		return "Let"
	case ExprLetExists:
		return "LetExists"
	case ExprMakeExists:
		return "MakeExists"
	case ExprCast:
		return "Cast"
	case ExprPair:
		return "Pair"
	}
	return "Expr(?)"
}

// VarUsage marks how a variable use consumes its binding.
type VarUsage uint8

const (
	// UsageCopy is the implicit non-consuming use.
	UsageCopy VarUsage = iota
	// UsageMove consumes the binding linearly.
	UsageMove
)

func (u VarUsage) String() string {
	if u == UsageMove {
		return "move"
	}
	return "copy"
}

// Expr is the per-node header; payloads live in per-kind arenas.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}
