package ast

import (
	"testing"

	"lace/internal/source"
)

func ident(b *Builder, name string) Ident {
	return Ident{Name: b.StringsInterner.Intern(name)}
}

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](4)
	if got := a.Allocate(7); got != 1 {
		t.Fatalf("first Allocate = %d, want 1", got)
	}
	if got := a.Allocate(9); got != 2 {
		t.Fatalf("second Allocate = %d, want 2", got)
	}
	if a.Get(0) != nil {
		t.Fatal("Get(0) should be nil")
	}
	if got := *a.Get(2); got != 9 {
		t.Fatalf("Get(2) = %d, want 9", got)
	}
}

func TestTypeAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(Hints{})
	unit := b.Types.NewUnit(source.Span{})
	if _, ok := b.Types.Var(unit); ok {
		t.Fatal("Var accessor accepted a Unit node")
	}
	v := b.Types.NewVar(source.Span{}, ident(b, "a"))
	data, ok := b.Types.Var(v)
	if !ok {
		t.Fatal("Var accessor rejected a Var node")
	}
	if got := b.Name(data.Ident); got != "a" {
		t.Fatalf("resolved name = %q, want %q", got, "a")
	}
}

func TestExprAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(Hints{})
	unit := b.Exprs.NewUnit(source.Span{})
	if _, ok := b.Exprs.App(unit); ok {
		t.Fatal("App accessor accepted a Unit node")
	}
	v := b.Exprs.NewVar(source.Span{}, UsageMove, ident(b, "x"))
	data, ok := b.Exprs.Var(v)
	if !ok {
		t.Fatal("Var accessor rejected a Var node")
	}
	if data.Usage != UsageMove {
		t.Fatalf("usage = %v, want move", data.Usage)
	}
}

// buildArrow makes 'Int -> Int' in the given builder.
func buildArrow(b *Builder) TypeID {
	intVar := func() TypeID {
		return b.Types.NewVar(source.Span{}, ident(b, "Int"))
	}
	return b.Types.NewFunc(source.Span{}, intVar(), intVar())
}

func TestEqualTypeAcrossBuilders(t *testing.T) {
	a := NewBuilder(Hints{})
	b := NewBuilder(Hints{})

	// Pre-seed builder b so interner IDs diverge from a's.
	b.StringsInterner.Intern("noise")
	b.StringsInterner.Intern("more-noise")

	ta := a.Types.NewQuantified(source.Span{}, QuantForAll,
		TypeParam{Name: ident(a, "t")}, buildArrow(a))
	tb := b.Types.NewQuantified(source.Span{}, QuantForAll,
		TypeParam{Name: ident(b, "t")}, buildArrow(b))

	if !EqualType(a, ta, b, tb) {
		t.Fatal("identical trees from separate builders compare unequal")
	}

	tc := b.Types.NewQuantified(source.Span{}, QuantExists,
		TypeParam{Name: ident(b, "t")}, buildArrow(b))
	if EqualType(a, ta, b, tc) {
		t.Fatal("forall and exists quantifiers compare equal")
	}
}

func TestEqualTypeCollisionID(t *testing.T) {
	b := NewBuilder(Hints{})
	plain := b.Types.NewVar(source.Span{}, Ident{Name: b.StringsInterner.Intern("x")})
	tagged := b.Types.NewVar(source.Span{}, Ident{Name: b.StringsInterner.Intern("x"), CollisionID: 3})
	if EqualType(b, plain, b, tagged) {
		t.Fatal("x and x#3 compare equal")
	}
}

func TestEqualExpr(t *testing.T) {
	a := NewBuilder(Hints{})
	b := NewBuilder(Hints{})

	mk := func(bld *Builder) ExprID {
		f := bld.Exprs.NewVar(source.Span{}, UsageCopy, ident(bld, "f"))
		x := bld.Exprs.NewVar(source.Span{}, UsageMove, ident(bld, "x"))
		app := bld.Exprs.NewApp(source.Span{}, f, x)
		return bld.Exprs.NewLet(source.Span{},
			[]Ident{ident(bld, "y")}, app, bld.Exprs.NewUnit(source.Span{}))
	}

	if !EqualExpr(a, mk(a), b, mk(b)) {
		t.Fatal("identical expr trees compare unequal")
	}

	copyUse := a.Exprs.NewVar(source.Span{}, UsageCopy, ident(a, "x"))
	moveUse := b.Exprs.NewVar(source.Span{}, UsageMove, ident(b, "x"))
	if EqualExpr(a, copyUse, b, moveUse) {
		t.Fatal("copy and move uses compare equal")
	}
}

func TestEqualExprInstArity(t *testing.T) {
	b := NewBuilder(Hints{})
	recv := func() ExprID {
		return b.Exprs.NewVar(source.Span{}, UsageCopy, ident(b, "poly"))
	}
	tv := func(name string) TypeID {
		return b.Types.NewVar(source.Span{}, ident(b, name))
	}
	one := b.Exprs.NewInst(source.Span{}, recv(), []TypeID{tv("A")})
	two := b.Exprs.NewInst(source.Span{}, recv(), []TypeID{tv("A"), tv("B")})
	if EqualExpr(b, one, b, two) {
		t.Fatal("instantiations with different arity compare equal")
	}
}

func TestKindStrings(t *testing.T) {
	if TypeQuantified.String() != "Quantified" {
		t.Fatalf("TypeQuantified.String() = %q", TypeQuantified.String())
	}
	if ExprMakeExists.String() != "MakeExists" {
		t.Fatalf("ExprMakeExists.String() = %q", ExprMakeExists.String())
	}
	if UsageMove.String() != "move" || UsageCopy.String() != "copy" {
		t.Fatal("VarUsage strings wrong")
	}
	if QuantForAll.String() != "forall" || QuantExists.String() != "exists" {
		t.Fatal("Quantifier strings wrong")
	}
}
