package ast

// Structural equality across builders. Spans are ignored; interned
// names are compared by their resolved strings so trees from separate
// parses can be checked against each other.

// EqualIdent compares name and collision id.
func EqualIdent(ab *Builder, a Ident, bb *Builder, b Ident) bool {
	return ab.Name(a) == bb.Name(b) && a.CollisionID == b.CollisionID
}

// EqualType reports whether two type trees are structurally equal.
func EqualType(ab *Builder, a TypeID, bb *Builder, b TypeID) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	ta, tb := ab.Types.Get(a), bb.Types.Get(b)
	if ta.Kind != tb.Kind {
		return false
	}

	switch ta.Kind {
	case TypeUnit:
		return true
	case TypeVar:
		va, _ := ab.Types.Var(a)
		vb, _ := bb.Types.Var(b)
		return EqualIdent(ab, va.Ident, bb, vb.Ident)
	case TypeApp:
		da, _ := ab.Types.App(a)
		db, _ := bb.Types.App(b)
		return EqualType(ab, da.Ctor, bb, db.Ctor) && EqualType(ab, da.Arg, bb, db.Arg)
	case TypeEquiv:
		da, _ := ab.Types.Equiv(a)
		db, _ := bb.Types.Equiv(b)
		return EqualType(ab, da.Orig, bb, db.Orig) && EqualType(ab, da.Dest, bb, db.Dest)
	case TypeFunc:
		da, _ := ab.Types.Func(a)
		db, _ := bb.Types.Func(b)
		return EqualType(ab, da.Arg, bb, db.Arg) && EqualType(ab, da.Ret, bb, db.Ret)
	case TypeQuantified:
		da, _ := ab.Types.Quantified(a)
		db, _ := bb.Types.Quantified(b)
		return da.Quant == db.Quant &&
			EqualIdent(ab, da.Param.Name, bb, db.Param.Name) &&
			EqualType(ab, da.Body, bb, db.Body)
	case TypePair:
		da, _ := ab.Types.Pair(a)
		db, _ := bb.Types.Pair(b)
		return EqualType(ab, da.Left, bb, db.Left) && EqualType(ab, da.Right, bb, db.Right)
	}
	return false
}

// EqualExpr reports whether two expression trees are structurally equal.
func EqualExpr(ab *Builder, a ExprID, bb *Builder, b ExprID) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	ea, eb := ab.Exprs.Get(a), bb.Exprs.Get(b)
	if ea.Kind != eb.Kind {
		return false
	}

	switch ea.Kind {
	case ExprUnit:
		return true
	case ExprVar:
		va, _ := ab.Exprs.Var(a)
		vb, _ := bb.Exprs.Var(b)
		return va.Usage == vb.Usage && EqualIdent(ab, va.Ident, bb, vb.Ident)
	case ExprApp:
		da, _ := ab.Exprs.App(a)
		db, _ := bb.Exprs.App(b)
		return EqualExpr(ab, da.Callee, bb, db.Callee) && EqualExpr(ab, da.Arg, bb, db.Arg)
	case ExprInst:
		da, _ := ab.Exprs.Inst(a)
		db, _ := bb.Exprs.Inst(b)
		if len(da.TypeArgs) != len(db.TypeArgs) {
			return false
		}
		if !EqualExpr(ab, da.Receiver, bb, db.Receiver) {
			return false
		}
		for i := range da.TypeArgs {
			if !EqualType(ab, da.TypeArgs[i], bb, db.TypeArgs[i]) {
				return false
			}
		}
		return true
	case ExprReflEquiv:
		da, _ := ab.Exprs.ReflEquiv(a)
		db, _ := bb.Exprs.ReflEquiv(b)
		return EqualType(ab, da.Type, bb, db.Type)
	case ExprForAll:
		da, _ := ab.Exprs.ForAll(a)
		db, _ := bb.Exprs.ForAll(b)
		if len(da.Params) != len(db.Params) {
			return false
		}
		for i := range da.Params {
			if !EqualIdent(ab, da.Params[i].Name, bb, db.Params[i].Name) {
				return false
			}
		}
		return EqualExpr(ab, da.Body, bb, db.Body)
	case ExprFunc:
		da, _ := ab.Exprs.Func(a)
		db, _ := bb.Exprs.Func(b)
		return EqualIdent(ab, da.ArgName, bb, db.ArgName) &&
			EqualType(ab, da.ArgType, bb, db.ArgType) &&
			EqualExpr(ab, da.Body, bb, db.Body)
	case ExprLet:
		da, _ := ab.Exprs.Let(a)
		db, _ := bb.Exprs.Let(b)
		if len(da.Names) != len(db.Names) {
			return false
		}
		for i := range da.Names {
			if !EqualIdent(ab, da.Names[i], bb, db.Names[i]) {
				return false
			}
		}
		return EqualExpr(ab, da.Val, bb, db.Val) && EqualExpr(ab, da.Body, bb, db.Body)
	case ExprLetExists:
		da, _ := ab.Exprs.LetExists(a)
		db, _ := bb.Exprs.LetExists(b)
		if len(da.TypeNames) != len(db.TypeNames) {
			return false
		}
		for i := range da.TypeNames {
			if !EqualIdent(ab, da.TypeNames[i], bb, db.TypeNames[i]) {
				return false
			}
		}
		return EqualIdent(ab, da.ValName, bb, db.ValName) &&
			EqualExpr(ab, da.Val, bb, db.Val) &&
			EqualExpr(ab, da.Body, bb, db.Body)
	case ExprMakeExists:
		da, _ := ab.Exprs.MakeExists(a)
		db, _ := bb.Exprs.MakeExists(b)
		if len(da.Params) != len(db.Params) {
			return false
		}
		for i := range da.Params {
			if !EqualIdent(ab, da.Params[i].Name, bb, db.Params[i].Name) {
				return false
			}
			if !EqualType(ab, da.Params[i].Type, bb, db.Params[i].Type) {
				return false
			}
		}
		return EqualType(ab, da.TypeBody, bb, db.TypeBody) &&
			EqualExpr(ab, da.Body, bb, db.Body)
	case ExprCast:
		da, _ := ab.Exprs.Cast(a)
		db, _ := bb.Exprs.Cast(b)
		return EqualIdent(ab, da.Param.Name, bb, db.Param.Name) &&
			EqualType(ab, da.TypeBody, bb, db.TypeBody) &&
			EqualExpr(ab, da.Proof, bb, db.Proof) &&
			EqualExpr(ab, da.Body, bb, db.Body)
	case ExprPair:
		da, _ := ab.Exprs.Pair(a)
		db, _ := bb.Exprs.Pair(b)
		return EqualExpr(ab, da.Left, bb, db.Left) && EqualExpr(ab, da.Right, bb, db.Right)
	}
	return false
}
