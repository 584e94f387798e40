package ast

import "lace/internal/source"

// Ident is one surface occurrence of a name. The collision id is the
// optional '#<uint>' suffix; the parser records it verbatim and never
// checks uniqueness — that policy belongs to the consumer.
type Ident struct {
	Name        source.StringID
	CollisionID uint32
	Span        source.Span
}

// TypeParam is an Ident bound as a type variable by a quantifier,
// a 'forall' expression, or a 'cast'.
type TypeParam struct {
	Name Ident
}

// ExistsParam is one 'name = Type' witness binding of a make_exists.
type ExistsParam struct {
	Name Ident
	Type TypeID
}
