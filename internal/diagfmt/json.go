package diagfmt

import (
	"encoding/json"
	"io"

	"lace/internal/ast"
	"lace/internal/format"
)

// TypeJSON builds a plain nested structure for the type tree under id,
// ready for json.Marshal.
func TypeJSON(b *ast.Builder, id ast.TypeID) any {
	if !id.IsValid() {
		return nil
	}
	node := b.Types.Get(id)
	out := map[string]any{"kind": node.Kind.String()}
	switch node.Kind {
	case ast.TypeVar:
		data, _ := b.Types.Var(id)
		out["name"] = format.Ident(b, data.Ident)
	case ast.TypeApp:
		data, _ := b.Types.App(id)
		out["ctor"] = TypeJSON(b, data.Ctor)
		out["arg"] = TypeJSON(b, data.Arg)
	case ast.TypeEquiv:
		data, _ := b.Types.Equiv(id)
		out["orig"] = TypeJSON(b, data.Orig)
		out["dest"] = TypeJSON(b, data.Dest)
	case ast.TypeFunc:
		data, _ := b.Types.Func(id)
		out["arg"] = TypeJSON(b, data.Arg)
		out["ret"] = TypeJSON(b, data.Ret)
	case ast.TypeQuantified:
		data, _ := b.Types.Quantified(id)
		out["quantifier"] = data.Quant.String()
		out["param"] = format.Ident(b, data.Param.Name)
		out["body"] = TypeJSON(b, data.Body)
	case ast.TypePair:
		data, _ := b.Types.Pair(id)
		out["left"] = TypeJSON(b, data.Left)
		out["right"] = TypeJSON(b, data.Right)
	}
	return out
}

// ExprJSON builds a plain nested structure for the expression tree
// under id, ready for json.Marshal.
func ExprJSON(b *ast.Builder, id ast.ExprID) any {
	if !id.IsValid() {
		return nil
	}
	node := b.Exprs.Get(id)
	out := map[string]any{"kind": node.Kind.String()}
	switch node.Kind {
	case ast.ExprVar:
		data, _ := b.Exprs.Var(id)
		out["usage"] = data.Usage.String()
		out["name"] = format.Ident(b, data.Ident)
	case ast.ExprApp:
		data, _ := b.Exprs.App(id)
		out["callee"] = ExprJSON(b, data.Callee)
		out["arg"] = ExprJSON(b, data.Arg)
	case ast.ExprInst:
		data, _ := b.Exprs.Inst(id)
		out["receiver"] = ExprJSON(b, data.Receiver)
		args := make([]any, len(data.TypeArgs))
		for i, ty := range data.TypeArgs {
			args[i] = TypeJSON(b, ty)
		}
		out["typeArgs"] = args
	case ast.ExprReflEquiv:
		data, _ := b.Exprs.ReflEquiv(id)
		out["type"] = TypeJSON(b, data.Type)
	case ast.ExprForAll:
		data, _ := b.Exprs.ForAll(id)
		params := make([]string, len(data.Params))
		for i, p := range data.Params {
			params[i] = format.Ident(b, p.Name)
		}
		out["params"] = params
		out["body"] = ExprJSON(b, data.Body)
	case ast.ExprFunc:
		data, _ := b.Exprs.Func(id)
		out["argName"] = format.Ident(b, data.ArgName)
		out["argType"] = TypeJSON(b, data.ArgType)
		out["body"] = ExprJSON(b, data.Body)
	case ast.ExprLet:
		data, _ := b.Exprs.Let(id)
		names := make([]string, len(data.Names))
		for i, n := range data.Names {
			names[i] = format.Ident(b, n)
		}
		out["names"] = names
		out["val"] = ExprJSON(b, data.Val)
		out["body"] = ExprJSON(b, data.Body)
	case ast.ExprLetExists:
		data, _ := b.Exprs.LetExists(id)
		names := make([]string, len(data.TypeNames))
		for i, n := range data.TypeNames {
			names[i] = format.Ident(b, n)
		}
		out["typeNames"] = names
		out["valName"] = format.Ident(b, data.ValName)
		out["val"] = ExprJSON(b, data.Val)
		out["body"] = ExprJSON(b, data.Body)
	case ast.ExprMakeExists:
		data, _ := b.Exprs.MakeExists(id)
		params := make([]any, len(data.Params))
		for i, p := range data.Params {
			params[i] = map[string]any{
				"name": format.Ident(b, p.Name),
				"type": TypeJSON(b, p.Type),
			}
		}
		out["params"] = params
		out["shape"] = TypeJSON(b, data.TypeBody)
		out["body"] = ExprJSON(b, data.Body)
	case ast.ExprCast:
		data, _ := b.Exprs.Cast(id)
		out["param"] = format.Ident(b, data.Param.Name)
		out["shape"] = TypeJSON(b, data.TypeBody)
		out["proof"] = ExprJSON(b, data.Proof)
		out["body"] = ExprJSON(b, data.Body)
	case ast.ExprPair:
		data, _ := b.Exprs.Pair(id)
		out["left"] = ExprJSON(b, data.Left)
		out["right"] = ExprJSON(b, data.Right)
	}
	return out
}

// WriteJSON encodes v indented to w.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
