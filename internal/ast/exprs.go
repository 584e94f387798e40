package ast

import "lace/internal/source"

type ExprVarData struct {
	Usage VarUsage
	Ident Ident
}

type ExprAppData struct {
	Callee ExprID
	Arg    ExprID
}

type ExprInstData struct {
	Receiver ExprID
	TypeArgs []TypeID
}

type ExprReflEquivData struct {
	Type TypeID
}

type ExprForAllData struct {
	Params []TypeParam
	Body   ExprID
}

type ExprFuncData struct {
	ArgName Ident
	ArgType TypeID
	Body    ExprID
}

type ExprLetData struct {
	Names []Ident // non-empty, checked during parsing
	Val   ExprID
	Body  ExprID
}

type ExprLetExistsData struct {
	TypeNames []Ident // non-empty
	ValName   Ident
	Val       ExprID
	Body      ExprID
}

type ExprMakeExistsData struct {
	Params   []ExistsParam // non-empty
	TypeBody TypeID
	Body     ExprID
}

type ExprCastData struct {
	Param    TypeParam
	TypeBody TypeID
	Proof    ExprID
	Body     ExprID
}

type ExprPairData struct {
	Left  ExprID
	Right ExprID
}

// Exprs manages allocation of expression nodes.
type Exprs struct {
	Arena       *Arena[Expr]
	Vars        *Arena[ExprVarData]
	Apps        *Arena[ExprAppData]
	Insts       *Arena[ExprInstData]
	ReflEquivs  *Arena[ExprReflEquivData]
	ForAlls     *Arena[ExprForAllData]
	Funcs       *Arena[ExprFuncData]
	Lets        *Arena[ExprLetData]
	LetExistss  *Arena[ExprLetExistsData]
	MakeExistss *Arena[ExprMakeExistsData]
	Casts       *Arena[ExprCastData]
	Pairs       *Arena[ExprPairData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Vars:        NewArena[ExprVarData](capHint),
		Apps:        NewArena[ExprAppData](capHint),
		Insts:       NewArena[ExprInstData](capHint),
		ReflEquivs:  NewArena[ExprReflEquivData](capHint),
		ForAlls:     NewArena[ExprForAllData](capHint),
		Funcs:       NewArena[ExprFuncData](capHint),
		Lets:        NewArena[ExprLetData](capHint),
		LetExistss:  NewArena[ExprLetExistsData](capHint),
		MakeExistss: NewArena[ExprMakeExistsData](capHint),
		Casts:       NewArena[ExprCastData](capHint),
		Pairs:       NewArena[ExprPairData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the header for the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewUnit creates the unit expression node.
func (e *Exprs) NewUnit(span source.Span) ExprID {
	return e.new(ExprUnit, span, NoPayloadID)
}

// NewVar creates a variable use.
func (e *Exprs) NewVar(span source.Span, usage VarUsage, ident Ident) ExprID {
	payload := e.Vars.Allocate(ExprVarData{Usage: usage, Ident: ident})
	return e.new(ExprVar, span, PayloadID(payload))
}

// Var returns the variable data for the given ID.
func (e *Exprs) Var(id ExprID) (*ExprVarData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprVar {
		return nil, false
	}
	return e.Vars.Get(uint32(ex.Payload)), true
}

// NewApp creates an application node.
func (e *Exprs) NewApp(span source.Span, callee, arg ExprID) ExprID {
	payload := e.Apps.Allocate(ExprAppData{Callee: callee, Arg: arg})
	return e.new(ExprApp, span, PayloadID(payload))
}

// App returns the application data for the given ID.
func (e *Exprs) App(id ExprID) (*ExprAppData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprApp {
		return nil, false
	}
	return e.Apps.Get(uint32(ex.Payload)), true
}

// NewInst creates an instantiation node.
func (e *Exprs) NewInst(span source.Span, receiver ExprID, typeArgs []TypeID) ExprID {
	payload := e.Insts.Allocate(ExprInstData{Receiver: receiver, TypeArgs: typeArgs})
	return e.new(ExprInst, span, PayloadID(payload))
}

// Inst returns the instantiation data for the given ID.
func (e *Exprs) Inst(id ExprID) (*ExprInstData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprInst {
		return nil, false
	}
	return e.Insts.Get(uint32(ex.Payload)), true
}

// NewReflEquiv creates a reflexivity proof node.
func (e *Exprs) NewReflEquiv(span source.Span, ty TypeID) ExprID {
	payload := e.ReflEquivs.Allocate(ExprReflEquivData{Type: ty})
	return e.new(ExprReflEquiv, span, PayloadID(payload))
}

// ReflEquiv returns the proof data for the given ID.
func (e *Exprs) ReflEquiv(id ExprID) (*ExprReflEquivData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprReflEquiv {
		return nil, false
	}
	return e.ReflEquivs.Get(uint32(ex.Payload)), true
}

// NewForAll creates a type-parameter introduction node.
func (e *Exprs) NewForAll(span source.Span, params []TypeParam, body ExprID) ExprID {
	payload := e.ForAlls.Allocate(ExprForAllData{Params: params, Body: body})
	return e.new(ExprForAll, span, PayloadID(payload))
}

// ForAll returns the introduction data for the given ID.
func (e *Exprs) ForAll(id ExprID) (*ExprForAllData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprForAll {
		return nil, false
	}
	return e.ForAlls.Get(uint32(ex.Payload)), true
}

// NewFunc creates a lambda node.
func (e *Exprs) NewFunc(span source.Span, argName Ident, argType TypeID, body ExprID) ExprID {
	payload := e.Funcs.Allocate(ExprFuncData{ArgName: argName, ArgType: argType, Body: body})
	return e.new(ExprFunc, span, PayloadID(payload))
}

// Func returns the lambda data for the given ID.
func (e *Exprs) Func(id ExprID) (*ExprFuncData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprFunc {
		return nil, false
	}
	return e.Funcs.Get(uint32(ex.Payload)), true
}

// NewLet creates a let binding node.
func (e *Exprs) NewLet(span source.Span, names []Ident, val, body ExprID) ExprID {
	payload := e.Lets.Allocate(ExprLetData{Names: names, Val: val, Body: body})
	return e.new(ExprLet, span, PayloadID(payload))
}

// Let returns the binding data for the given ID.
func (e *Exprs) Let(id ExprID) (*ExprLetData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprLet {
		return nil, false
	}
	return e.Lets.Get(uint32(ex.Payload)), true
}

// NewLetExists creates an existential unpacking node.
func (e *Exprs) NewLetExists(span source.Span, typeNames []Ident, valName Ident, val, body ExprID) ExprID {
	payload := e.LetExistss.Allocate(ExprLetExistsData{
		TypeNames: typeNames,
		ValName:   valName,
		Val:       val,
		Body:      body,
	})
	return e.new(ExprLetExists, span, PayloadID(payload))
}

// LetExists returns the unpacking data for the given ID.
func (e *Exprs) LetExists(id ExprID) (*ExprLetExistsData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprLetExists {
		return nil, false
	}
	return e.LetExistss.Get(uint32(ex.Payload)), true
}

// NewMakeExists creates an existential packing node.
func (e *Exprs) NewMakeExists(span source.Span, params []ExistsParam, typeBody TypeID, body ExprID) ExprID {
	payload := e.MakeExistss.Allocate(ExprMakeExistsData{
		Params:   params,
		TypeBody: typeBody,
		Body:     body,
	})
	return e.new(ExprMakeExists, span, PayloadID(payload))
}

// MakeExists returns the packing data for the given ID.
func (e *Exprs) MakeExists(id ExprID) (*ExprMakeExistsData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprMakeExists {
		return nil, false
	}
	return e.MakeExistss.Get(uint32(ex.Payload)), true
}

// NewCast creates a cast node.
func (e *Exprs) NewCast(span source.Span, param TypeParam, typeBody TypeID, proof, body ExprID) ExprID {
	payload := e.Casts.Allocate(ExprCastData{
		Param:    param,
		TypeBody: typeBody,
		Proof:    proof,
		Body:     body,
	})
	return e.new(ExprCast, span, PayloadID(payload))
}

// Cast returns the cast data for the given ID.
func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.Get(uint32(ex.Payload)), true
}

// NewPair creates a pair node.
func (e *Exprs) NewPair(span source.Span, left, right ExprID) ExprID {
	payload := e.Pairs.Allocate(ExprPairData{Left: left, Right: right})
	return e.new(ExprPair, span, PayloadID(payload))
}

// Pair returns the pair data for the given ID.
func (e *Exprs) Pair(id ExprID) (*ExprPairData, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprPair {
		return nil, false
	}
	return e.Pairs.Get(uint32(ex.Payload)), true
}
