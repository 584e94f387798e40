package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"lace/internal/ast"
	"lace/internal/format"
)

// WriteTypeTree dumps the type tree under id, one node per line.
func WriteTypeTree(w io.Writer, b *ast.Builder, id ast.TypeID, opts ASTOpts) {
	writeTypeNode(w, b, id, 0, "", indentOf(opts))
}

// WriteExprTree dumps the expression tree under id, one node per line.
func WriteExprTree(w io.Writer, b *ast.Builder, id ast.ExprID, opts ASTOpts) {
	writeExprNode(w, b, id, 0, "", indentOf(opts))
}

func indentOf(opts ASTOpts) string {
	if opts.Indent == "" {
		return "  "
	}
	return opts.Indent
}

func writeLine(w io.Writer, depth int, label, text, indent string) {
	prefix := strings.Repeat(indent, depth)
	if label != "" {
		fmt.Fprintf(w, "%s%s: %s\n", prefix, label, text)
	} else {
		fmt.Fprintf(w, "%s%s\n", prefix, text)
	}
}

func writeTypeNode(w io.Writer, b *ast.Builder, id ast.TypeID, depth int, label, indent string) {
	if !id.IsValid() {
		writeLine(w, depth, label, "<none>", indent)
		return
	}
	node := b.Types.Get(id)
	switch node.Kind {
	case ast.TypeUnit:
		writeLine(w, depth, label, "Unit", indent)
	case ast.TypeVar:
		data, _ := b.Types.Var(id)
		writeLine(w, depth, label, "Var "+format.Ident(b, data.Ident), indent)
	case ast.TypeApp:
		data, _ := b.Types.App(id)
		writeLine(w, depth, label, "App", indent)
		writeTypeNode(w, b, data.Ctor, depth+1, "ctor", indent)
		writeTypeNode(w, b, data.Arg, depth+1, "arg", indent)
	case ast.TypeEquiv:
		data, _ := b.Types.Equiv(id)
		writeLine(w, depth, label, "Equiv", indent)
		writeTypeNode(w, b, data.Orig, depth+1, "orig", indent)
		writeTypeNode(w, b, data.Dest, depth+1, "dest", indent)
	case ast.TypeFunc:
		data, _ := b.Types.Func(id)
		writeLine(w, depth, label, "Func", indent)
		writeTypeNode(w, b, data.Arg, depth+1, "arg", indent)
		writeTypeNode(w, b, data.Ret, depth+1, "ret", indent)
	case ast.TypeQuantified:
		data, _ := b.Types.Quantified(id)
		writeLine(w, depth, label, "Quantified "+data.Quant.String()+" {"+format.Ident(b, data.Param.Name)+"}", indent)
		writeTypeNode(w, b, data.Body, depth+1, "body", indent)
	case ast.TypePair:
		data, _ := b.Types.Pair(id)
		writeLine(w, depth, label, "Pair", indent)
		writeTypeNode(w, b, data.Left, depth+1, "left", indent)
		writeTypeNode(w, b, data.Right, depth+1, "right", indent)
	}
}

func writeExprNode(w io.Writer, b *ast.Builder, id ast.ExprID, depth int, label, indent string) {
	if !id.IsValid() {
		writeLine(w, depth, label, "<none>", indent)
		return
	}
	node := b.Exprs.Get(id)
	switch node.Kind {
	case ast.ExprUnit:
		writeLine(w, depth, label, "Unit", indent)
	case ast.ExprVar:
		data, _ := b.Exprs.Var(id)
		writeLine(w, depth, label, "Var "+data.Usage.String()+" "+format.Ident(b, data.Ident), indent)
	case ast.ExprApp:
		data, _ := b.Exprs.App(id)
		writeLine(w, depth, label, "App", indent)
		writeExprNode(w, b, data.Callee, depth+1, "callee", indent)
		writeExprNode(w, b, data.Arg, depth+1, "arg", indent)
	case ast.ExprInst:
		data, _ := b.Exprs.Inst(id)
		writeLine(w, depth, label, "Inst", indent)
		writeExprNode(w, b, data.Receiver, depth+1, "receiver", indent)
		for i, ty := range data.TypeArgs {
			writeTypeNode(w, b, ty, depth+1, fmt.Sprintf("type %d", i), indent)
		}
	case ast.ExprReflEquiv:
		data, _ := b.Exprs.ReflEquiv(id)
		writeLine(w, depth, label, "ReflEquiv", indent)
		writeTypeNode(w, b, data.Type, depth+1, "type", indent)
	case ast.ExprForAll:
		data, _ := b.Exprs.ForAll(id)
		names := make([]string, len(data.Params))
		for i, p := range data.Params {
			names[i] = format.Ident(b, p.Name)
		}
		writeLine(w, depth, label, "ForAll {"+strings.Join(names, ", ")+"}", indent)
		writeExprNode(w, b, data.Body, depth+1, "body", indent)
	case ast.ExprFunc:
		data, _ := b.Exprs.Func(id)
		writeLine(w, depth, label, "Func "+format.Ident(b, data.ArgName), indent)
		writeTypeNode(w, b, data.ArgType, depth+1, "arg type", indent)
		writeExprNode(w, b, data.Body, depth+1, "body", indent)
	case ast.ExprLet:
		data, _ := b.Exprs.Let(id)
		names := make([]string, len(data.Names))
		for i, n := range data.Names {
			names[i] = format.Ident(b, n)
		}
		writeLine(w, depth, label, "Let "+strings.Join(names, ", "), indent)
		writeExprNode(w, b, data.Val, depth+1, "val", indent)
		writeExprNode(w, b, data.Body, depth+1, "body", indent)
	case ast.ExprLetExists:
		data, _ := b.Exprs.LetExists(id)
		names := make([]string, len(data.TypeNames))
		for i, n := range data.TypeNames {
			names[i] = format.Ident(b, n)
		}
		writeLine(w, depth, label,
			"LetExists {"+strings.Join(names, ", ")+"} "+format.Ident(b, data.ValName), indent)
		writeExprNode(w, b, data.Val, depth+1, "val", indent)
		writeExprNode(w, b, data.Body, depth+1, "body", indent)
	case ast.ExprMakeExists:
		data, _ := b.Exprs.MakeExists(id)
		writeLine(w, depth, label, "MakeExists", indent)
		for _, p := range data.Params {
			writeTypeNode(w, b, p.Type, depth+1, format.Ident(b, p.Name), indent)
		}
		writeTypeNode(w, b, data.TypeBody, depth+1, "shape", indent)
		writeExprNode(w, b, data.Body, depth+1, "body", indent)
	case ast.ExprCast:
		data, _ := b.Exprs.Cast(id)
		writeLine(w, depth, label, "Cast {"+format.Ident(b, data.Param.Name)+"}", indent)
		writeTypeNode(w, b, data.TypeBody, depth+1, "shape", indent)
		writeExprNode(w, b, data.Proof, depth+1, "proof", indent)
		writeExprNode(w, b, data.Body, depth+1, "body", indent)
	case ast.ExprPair:
		data, _ := b.Exprs.Pair(id)
		writeLine(w, depth, label, "Pair", indent)
		writeExprNode(w, b, data.Left, depth+1, "left", indent)
		writeExprNode(w, b, data.Right, depth+1, "right", indent)
	}
}
