package ast

import "lace/internal/source"

type TypeVarData struct {
	Ident Ident
}

type TypeAppData struct {
	Ctor TypeID
	Arg  TypeID
}

type TypeEquivData struct {
	Orig TypeID
	Dest TypeID
}

type TypeFuncData struct {
	Arg TypeID
	Ret TypeID
}

type TypeQuantifiedData struct {
	Quant Quantifier
	Param TypeParam
	Body  TypeID
}

type TypePairData struct {
	Left  TypeID
	Right TypeID
}

// Types manages allocation of type nodes.
type Types struct {
	Arena       *Arena[Type]
	Vars        *Arena[TypeVarData]
	Apps        *Arena[TypeAppData]
	Equivs      *Arena[TypeEquivData]
	Funcs       *Arena[TypeFuncData]
	Quantifieds *Arena[TypeQuantifiedData]
	Pairs       *Arena[TypePairData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Types{
		Arena:       NewArena[Type](capHint),
		Vars:        NewArena[TypeVarData](capHint),
		Apps:        NewArena[TypeAppData](capHint),
		Equivs:      NewArena[TypeEquivData](capHint),
		Funcs:       NewArena[TypeFuncData](capHint),
		Quantifieds: NewArena[TypeQuantifiedData](capHint),
		Pairs:       NewArena[TypePairData](capHint),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the header for the given ID.
func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

// NewUnit creates the unit type node.
func (t *Types) NewUnit(span source.Span) TypeID {
	return t.new(TypeUnit, span, NoPayloadID)
}

// NewVar creates a type variable reference.
func (t *Types) NewVar(span source.Span, ident Ident) TypeID {
	payload := t.Vars.Allocate(TypeVarData{Ident: ident})
	return t.new(TypeVar, span, PayloadID(payload))
}

// Var returns the variable data for the given ID.
func (t *Types) Var(id TypeID) (*TypeVarData, bool) {
	ty := t.Get(id)
	if ty == nil || ty.Kind != TypeVar {
		return nil, false
	}
	return t.Vars.Get(uint32(ty.Payload)), true
}

// NewApp creates a type application node.
func (t *Types) NewApp(span source.Span, ctor, arg TypeID) TypeID {
	payload := t.Apps.Allocate(TypeAppData{Ctor: ctor, Arg: arg})
	return t.new(TypeApp, span, PayloadID(payload))
}

// App returns the application data for the given ID.
func (t *Types) App(id TypeID) (*TypeAppData, bool) {
	ty := t.Get(id)
	if ty == nil || ty.Kind != TypeApp {
		return nil, false
	}
	return t.Apps.Get(uint32(ty.Payload)), true
}

// NewEquiv creates an equivalence proposition node.
func (t *Types) NewEquiv(span source.Span, orig, dest TypeID) TypeID {
	payload := t.Equivs.Allocate(TypeEquivData{Orig: orig, Dest: dest})
	return t.new(TypeEquiv, span, PayloadID(payload))
}

// Equiv returns the equivalence data for the given ID.
func (t *Types) Equiv(id TypeID) (*TypeEquivData, bool) {
	ty := t.Get(id)
	if ty == nil || ty.Kind != TypeEquiv {
		return nil, false
	}
	return t.Equivs.Get(uint32(ty.Payload)), true
}

// NewFunc creates a function type node.
func (t *Types) NewFunc(span source.Span, arg, ret TypeID) TypeID {
	payload := t.Funcs.Allocate(TypeFuncData{Arg: arg, Ret: ret})
	return t.new(TypeFunc, span, PayloadID(payload))
}

// Func returns the function data for the given ID.
func (t *Types) Func(id TypeID) (*TypeFuncData, bool) {
	ty := t.Get(id)
	if ty == nil || ty.Kind != TypeFunc {
		return nil, false
	}
	return t.Funcs.Get(uint32(ty.Payload)), true
}

// NewQuantified creates a quantifier node binding one parameter.
func (t *Types) NewQuantified(span source.Span, quant Quantifier, param TypeParam, body TypeID) TypeID {
	payload := t.Quantifieds.Allocate(TypeQuantifiedData{Quant: quant, Param: param, Body: body})
	return t.new(TypeQuantified, span, PayloadID(payload))
}

// Quantified returns the quantifier data for the given ID.
func (t *Types) Quantified(id TypeID) (*TypeQuantifiedData, bool) {
	ty := t.Get(id)
	if ty == nil || ty.Kind != TypeQuantified {
		return nil, false
	}
	return t.Quantifieds.Get(uint32(ty.Payload)), true
}

// NewPair creates a pair type node.
func (t *Types) NewPair(span source.Span, left, right TypeID) TypeID {
	payload := t.Pairs.Allocate(TypePairData{Left: left, Right: right})
	return t.new(TypePair, span, PayloadID(payload))
}

// Pair returns the pair data for the given ID.
func (t *Types) Pair(id TypeID) (*TypePairData, bool) {
	ty := t.Get(id)
	if ty == nil || ty.Kind != TypePair {
		return nil, false
	}
	return t.Pairs.Get(uint32(ty.Payload)), true
}
