package format

import (
	"strings"

	"lace/internal/ast"
)

// Type renders the type tree under id as canonical source.
func Type(b *ast.Builder, id ast.TypeID) string {
	var sb strings.Builder
	writeType(&sb, b, id, levelPair)
	return sb.String()
}

func typeLevel(kind ast.TypeKind) int {
	switch kind {
	case ast.TypeUnit, ast.TypeVar:
		return levelAtomic
	case ast.TypeApp:
		return levelCallable
	case ast.TypeEquiv, ast.TypeFunc, ast.TypeQuantified:
		// 'equiv' cannot continue an application chain, so it sits
		// with the arrow and the quantifiers despite its position in
		// the grammar.
		return levelBlock
	case ast.TypePair:
		return levelPair
	}
	return levelAtomic
}

func writeType(sb *strings.Builder, b *ast.Builder, id ast.TypeID, min int) {
	node := b.Types.Get(id)
	if typeLevel(node.Kind) < min {
		sb.WriteByte('(')
		writeType(sb, b, id, levelPair)
		sb.WriteByte(')')
		return
	}

	switch node.Kind {
	case ast.TypeUnit:
		sb.WriteString("()")
	case ast.TypeVar:
		data, _ := b.Types.Var(id)
		writeIdent(sb, b, data.Ident)
	case ast.TypeApp:
		data, _ := b.Types.App(id)
		writeType(sb, b, data.Ctor, levelCallable)
		sb.WriteByte(' ')
		writeType(sb, b, data.Arg, levelAtomic)
	case ast.TypeEquiv:
		data, _ := b.Types.Equiv(id)
		sb.WriteString("equiv ")
		writeType(sb, b, data.Orig, levelAtomic)
		sb.WriteByte(' ')
		writeType(sb, b, data.Dest, levelAtomic)
	case ast.TypeFunc:
		data, _ := b.Types.Func(id)
		writeType(sb, b, data.Arg, levelAtomic)
		sb.WriteString(" -> ")
		writeType(sb, b, data.Ret, levelBlock)
	case ast.TypeQuantified:
		data, _ := b.Types.Quantified(id)
		if data.Quant == ast.QuantForAll {
			sb.WriteString("forall")
		} else {
			sb.WriteString("exists")
		}
		// Fold a chain of same-quantifier binders back into one
		// group list, undoing the parser's desugaring.
		body := id
		for {
			d, _ := b.Types.Quantified(body)
			sb.WriteString(" {")
			writeIdent(sb, b, d.Param.Name)
			sb.WriteByte('}')
			next, ok := b.Types.Quantified(d.Body)
			if !ok || next.Quant != d.Quant {
				body = d.Body
				break
			}
			body = d.Body
		}
		sb.WriteByte(' ')
		writeType(sb, b, body, levelBlock)
	case ast.TypePair:
		data, _ := b.Types.Pair(id)
		writeType(sb, b, data.Left, levelBlock)
		sb.WriteString(", ")
		writeType(sb, b, data.Right, levelPair)
	}
}
