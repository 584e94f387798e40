package ast

import "lace/internal/source"

type Hints struct{ Types, Exprs uint }

// Builder bundles the arenas and the interner for one parse. Builders
// share nothing, so independent parses can run concurrently.
type Builder struct {
	Types           *Types
	Exprs           *Exprs
	StringsInterner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Types == 0 {
		hints.Types = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Types:           NewTypes(hints.Types),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: source.NewInterner(),
	}
}

// Name resolves an identifier's interned name.
func (b *Builder) Name(id Ident) string {
	return b.StringsInterner.MustLookup(id.Name)
}
