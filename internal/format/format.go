// Package format renders AST nodes back to parseable source in a
// canonical spelling: minimal parentheses, one space between tokens,
// names quoted only when their spelling requires it.
package format

import (
	"strconv"
	"strings"

	"lace/internal/ast"
	"lace/internal/token"
)

// Precedence levels shared by both renderers, loosest to tightest.
// A node whose own level is below what its position requires gets
// parenthesized.
const (
	levelPair     = 0
	levelBlock    = 1 // quantified/arrow types, block expressions
	levelCallable = 2 // type application, call/instantiation postfix
	levelAtomic   = 3
)

// Ident renders a name with its collision suffix, quoting it when the
// spelling is not a raw name.
func Ident(b *ast.Builder, id ast.Ident) string {
	var sb strings.Builder
	writeIdent(&sb, b, id)
	return sb.String()
}

func writeIdent(sb *strings.Builder, b *ast.Builder, id ast.Ident) {
	name := b.Name(id)
	if isRawName(name) {
		sb.WriteString(name)
	} else {
		writeQuoted(sb, name)
	}
	if id.CollisionID != 0 {
		sb.WriteByte('#')
		sb.WriteString(strconv.FormatUint(uint64(id.CollisionID), 10))
	}
}

// isRawName reports whether s lexes back as a single Name token.
func isRawName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	if _, isKeyword := token.LookupKeyword(s); isKeyword {
		return false
	}
	return true
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('`')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '`', '\\', '\n':
			// A bare newline would end the token; escaped it survives.
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('`')
}
