package format

import (
	"strings"

	"lace/internal/ast"
)

// Expr renders the expression tree under id as canonical source.
func Expr(b *ast.Builder, id ast.ExprID) string {
	var sb strings.Builder
	writeExpr(&sb, b, id, levelPair)
	return sb.String()
}

func exprLevel(kind ast.ExprKind) int {
	switch kind {
	case ast.ExprUnit, ast.ExprVar:
		return levelAtomic
	case ast.ExprApp, ast.ExprInst, ast.ExprReflEquiv:
		return levelCallable
	case ast.ExprForAll, ast.ExprFunc, ast.ExprLet, ast.ExprLetExists,
		ast.ExprMakeExists, ast.ExprCast:
		return levelBlock
	case ast.ExprPair:
		return levelPair
	}
	return levelAtomic
}

func writeExpr(sb *strings.Builder, b *ast.Builder, id ast.ExprID, min int) {
	node := b.Exprs.Get(id)
	if exprLevel(node.Kind) < min {
		sb.WriteByte('(')
		writeExpr(sb, b, id, levelPair)
		sb.WriteByte(')')
		return
	}

	switch node.Kind {
	case ast.ExprUnit:
		sb.WriteString("()")
	case ast.ExprVar:
		data, _ := b.Exprs.Var(id)
		if data.Usage == ast.UsageMove {
			sb.WriteString("move ")
		}
		writeIdent(sb, b, data.Ident)
	case ast.ExprApp:
		data, _ := b.Exprs.App(id)
		writeExpr(sb, b, data.Callee, levelCallable)
		sb.WriteByte('(')
		if b.Exprs.Get(data.Arg).Kind != ast.ExprUnit {
			writeExpr(sb, b, data.Arg, levelPair)
		}
		sb.WriteByte(')')
	case ast.ExprInst:
		data, _ := b.Exprs.Inst(id)
		// A nested Inst receiver needs parens, otherwise reparsing
		// folds the groups into one flat node.
		if b.Exprs.Get(data.Receiver).Kind == ast.ExprInst {
			sb.WriteByte('(')
			writeExpr(sb, b, data.Receiver, levelPair)
			sb.WriteByte(')')
		} else {
			writeExpr(sb, b, data.Receiver, levelCallable)
		}
		for _, ty := range data.TypeArgs {
			sb.WriteString(" {")
			writeType(sb, b, ty, levelPair)
			sb.WriteByte('}')
		}
	case ast.ExprReflEquiv:
		data, _ := b.Exprs.ReflEquiv(id)
		sb.WriteString("refl_equiv {")
		writeType(sb, b, data.Type, levelPair)
		sb.WriteByte('}')
	case ast.ExprForAll:
		data, _ := b.Exprs.ForAll(id)
		sb.WriteString("forall")
		for _, p := range data.Params {
			sb.WriteString(" {")
			writeIdent(sb, b, p.Name)
			sb.WriteByte('}')
		}
		sb.WriteByte(' ')
		writeExpr(sb, b, data.Body, levelBlock)
	case ast.ExprFunc:
		data, _ := b.Exprs.Func(id)
		sb.WriteString("func (")
		writeIdent(sb, b, data.ArgName)
		sb.WriteString(": ")
		writeType(sb, b, data.ArgType, levelPair)
		sb.WriteString(") ")
		writeExpr(sb, b, data.Body, levelBlock)
	case ast.ExprLet:
		data, _ := b.Exprs.Let(id)
		sb.WriteString("let ")
		for i, name := range data.Names {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeIdent(sb, b, name)
		}
		sb.WriteString(" = ")
		writeExpr(sb, b, data.Val, levelPair)
		sb.WriteString(" in ")
		writeExpr(sb, b, data.Body, levelBlock)
	case ast.ExprLetExists:
		data, _ := b.Exprs.LetExists(id)
		sb.WriteString("let_exists {")
		for i, name := range data.TypeNames {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeIdent(sb, b, name)
		}
		sb.WriteString("} ")
		writeIdent(sb, b, data.ValName)
		sb.WriteString(" = ")
		writeExpr(sb, b, data.Val, levelPair)
		sb.WriteString(" in ")
		writeExpr(sb, b, data.Body, levelBlock)
	case ast.ExprMakeExists:
		data, _ := b.Exprs.MakeExists(id)
		sb.WriteString("make_exists {")
		for i, p := range data.Params {
			if i > 0 {
				sb.WriteString("; ")
			}
			writeIdent(sb, b, p.Name)
			sb.WriteString(" = ")
			writeType(sb, b, p.Type, levelPair)
		}
		sb.WriteString("} of {")
		writeType(sb, b, data.TypeBody, levelPair)
		sb.WriteString("} ")
		writeExpr(sb, b, data.Body, levelBlock)
	case ast.ExprCast:
		data, _ := b.Exprs.Cast(id)
		sb.WriteString("cast {")
		writeIdent(sb, b, data.Param.Name)
		sb.WriteString(" = ")
		writeType(sb, b, data.TypeBody, levelPair)
		sb.WriteString("} by ")
		writeExpr(sb, b, data.Proof, levelCallable)
		sb.WriteByte(' ')
		writeExpr(sb, b, data.Body, levelBlock)
	case ast.ExprPair:
		data, _ := b.Exprs.Pair(id)
		writeExpr(sb, b, data.Left, levelBlock)
		sb.WriteString(", ")
		writeExpr(sb, b, data.Right, levelPair)
	}
}
