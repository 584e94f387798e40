package parser

import (
	"fmt"
	"strings"
	"testing"

	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/lexer"
	"lace/internal/source"
)

func newTestLexer(t *testing.T, input string, bag *diag.Bag) *lexer.Lexer {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lace", []byte(input))
	return lexer.New(fs.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
}

func parseTypeSource(t *testing.T, input string) (*ast.Builder, ast.TypeID, bool, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	lx := newTestLexer(t, input, bag)
	builder := ast.NewBuilder(ast.Hints{})
	id, ok := ParseType(lx, builder, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return builder, id, ok, bag
}

func parseExprSource(t *testing.T, input string) (*ast.Builder, ast.ExprID, bool, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	lx := newTestLexer(t, input, bag)
	builder := ast.NewBuilder(ast.Hints{})
	id, ok := ParseExpr(lx, builder, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return builder, id, ok, bag
}

func mustParseType(t *testing.T, input string) (*ast.Builder, ast.TypeID) {
	t.Helper()
	builder, id, ok, bag := parseTypeSource(t, input)
	if !ok {
		t.Fatalf("ParseType(%q) failed: %s", input, diagnosticsSummary(bag))
	}
	return builder, id
}

func mustParseExpr(t *testing.T, input string) (*ast.Builder, ast.ExprID) {
	t.Helper()
	builder, id, ok, bag := parseExprSource(t, input)
	if !ok {
		t.Fatalf("ParseExpr(%q) failed: %s", input, diagnosticsSummary(bag))
	}
	return builder, id
}

func wantCode(t *testing.T, bag *diag.Bag, code diag.Code) {
	t.Helper()
	if !bag.HasCode(code) {
		t.Fatalf("expected %s, got: %s", code.String(), diagnosticsSummary(bag))
	}
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// varName resolves a type Var node to its written name.
func varName(t *testing.T, b *ast.Builder, id ast.TypeID) string {
	t.Helper()
	data, ok := b.Types.Var(id)
	if !ok {
		t.Fatalf("expected type Var node, got %v", b.Types.Get(id).Kind)
	}
	return b.Name(data.Ident)
}

// exprVarName resolves an expression Var node to its written name.
func exprVarName(t *testing.T, b *ast.Builder, id ast.ExprID) string {
	t.Helper()
	data, ok := b.Exprs.Var(id)
	if !ok {
		t.Fatalf("expected expr Var node, got %v", b.Exprs.Get(id).Kind)
	}
	return b.Name(data.Ident)
}
