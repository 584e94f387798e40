package parser

import (
	"testing"

	"lace/internal/ast"
	"lace/internal/diag"
)

func TestParseLet_Names(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
	}{
		{"single", "let x = v in b", []string{"x"}},
		{"pair_destructure", "let x, y = v in b", []string{"x", "y"}},
		{"three_names", "let x, y, z = v in b", []string{"x", "y", "z"}},
		{"trailing_comma", "let x, y, = v in b", []string{"x", "y"}},
		{"quoted_name", "let `the result` = v in b", []string{"the result"}},
		{"collision_ids", "let x#1, x#2 = v in b", []string{"x", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, id := mustParseExpr(t, tt.input)
			data, ok := builder.Exprs.Let(id)
			if !ok {
				t.Fatalf("expected Let, got %v", builder.Exprs.Get(id).Kind)
			}
			if len(data.Names) != len(tt.wantNames) {
				t.Fatalf("names: got %d, want %d", len(data.Names), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got := builder.Name(data.Names[i]); got != want {
					t.Errorf("name %d: got %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestParseLet_EmptyBinderList(t *testing.T) {
	_, _, ok, bag := parseExprSource(t, "let = v in b")
	if ok {
		t.Fatal("expected failure")
	}
	wantCode(t, bag, diag.SynEmptyLetBinding)
}

func TestParseLet_BodyExtendsRight(t *testing.T) {
	// The body swallows the second let; the comma ends it.
	builder, id := mustParseExpr(t, "let x = v in let y = w in b, z")

	pair, ok := builder.Exprs.Pair(id)
	if !ok {
		t.Fatalf("expected Pair at the top, got %v", builder.Exprs.Get(id).Kind)
	}
	outer, ok := builder.Exprs.Let(pair.Left)
	if !ok {
		t.Fatal("pair left should be the outer let")
	}
	if _, ok := builder.Exprs.Let(outer.Body); !ok {
		t.Fatal("outer let body should be the inner let")
	}
}

func TestParseLet_PairValue(t *testing.T) {
	builder, id := mustParseExpr(t, "let x, y = a, b in x")
	data, ok := builder.Exprs.Let(id)
	if !ok {
		t.Fatalf("expected Let, got %v", builder.Exprs.Get(id).Kind)
	}
	if _, ok := builder.Exprs.Pair(data.Val); !ok {
		t.Fatal("bound value should be the pair")
	}
}

func TestParseForAllExpr(t *testing.T) {
	builder, id := mustParseExpr(t, "forall {a} {b} func (x: a) x")

	data, ok := builder.Exprs.ForAll(id)
	if !ok {
		t.Fatalf("expected ForAll, got %v", builder.Exprs.Get(id).Kind)
	}
	// Unlike quantified types, the parameter list stays flat.
	if len(data.Params) != 2 {
		t.Fatalf("params: got %d, want 2", len(data.Params))
	}
	if builder.Name(data.Params[0].Name) != "a" || builder.Name(data.Params[1].Name) != "b" {
		t.Fatal("params misplaced")
	}
	if _, ok := builder.Exprs.Func(data.Body); !ok {
		t.Fatal("body should be the lambda")
	}
}

func TestParseFuncExpr(t *testing.T) {
	builder, id := mustParseExpr(t, "func (x: List Int) move x")

	data, ok := builder.Exprs.Func(id)
	if !ok {
		t.Fatalf("expected Func, got %v", builder.Exprs.Get(id).Kind)
	}
	if got := builder.Name(data.ArgName); got != "x" {
		t.Fatalf("arg name: got %q", got)
	}
	if _, ok := builder.Types.App(data.ArgType); !ok {
		t.Fatal("arg type should be the application")
	}
	use, ok := builder.Exprs.Var(data.Body)
	if !ok || use.Usage != ast.UsageMove {
		t.Fatal("body should be the move use")
	}
}

func TestParseLetExists(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantTypeNames []string
	}{
		{"one_witness", "let_exists {t} x = v in b", []string{"t"}},
		{"two_witnesses", "let_exists {t1, t2} x = v in b", []string{"t1", "t2"}},
		{"trailing_comma", "let_exists {t1, t2,} x = v in b", []string{"t1", "t2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, id := mustParseExpr(t, tt.input)
			data, ok := builder.Exprs.LetExists(id)
			if !ok {
				t.Fatalf("expected LetExists, got %v", builder.Exprs.Get(id).Kind)
			}
			if len(data.TypeNames) != len(tt.wantTypeNames) {
				t.Fatalf("type names: got %d, want %d", len(data.TypeNames), len(tt.wantTypeNames))
			}
			for i, want := range tt.wantTypeNames {
				if got := builder.Name(data.TypeNames[i]); got != want {
					t.Errorf("type name %d: got %q, want %q", i, got, want)
				}
			}
			if got := builder.Name(data.ValName); got != "x" {
				t.Errorf("payload name: got %q, want x", got)
			}
		})
	}
}

func TestParseLetExists_RequiresWitness(t *testing.T) {
	_, _, ok, bag := parseExprSource(t, "let_exists {} x = v in b")
	if ok {
		t.Fatal("expected failure")
	}
	wantCode(t, bag, diag.SynExpectName)
}

func TestParseMakeExists(t *testing.T) {
	builder, id := mustParseExpr(t, "make_exists {t1 = Int; t2 = Float} of {t1, t2} v")

	data, ok := builder.Exprs.MakeExists(id)
	if !ok {
		t.Fatalf("expected MakeExists, got %v", builder.Exprs.Get(id).Kind)
	}
	if len(data.Params) != 2 {
		t.Fatalf("params: got %d, want 2", len(data.Params))
	}
	if builder.Name(data.Params[0].Name) != "t1" || varName(t, builder, data.Params[0].Type) != "Int" {
		t.Fatal("first witness misplaced")
	}
	if builder.Name(data.Params[1].Name) != "t2" || varName(t, builder, data.Params[1].Type) != "Float" {
		t.Fatal("second witness misplaced")
	}
	if _, ok := builder.Types.Pair(data.TypeBody); !ok {
		t.Fatal("declared shape should be the pair type")
	}
	if got := exprVarName(t, builder, data.Body); got != "v" {
		t.Fatalf("body: got %q, want v", got)
	}
}

func TestParseMakeExists_SingleWitness(t *testing.T) {
	builder, id := mustParseExpr(t, "make_exists {t = Int} of {t} x")
	data, ok := builder.Exprs.MakeExists(id)
	if !ok {
		t.Fatalf("expected MakeExists, got %v", builder.Exprs.Get(id).Kind)
	}
	if len(data.Params) != 1 {
		t.Fatalf("params: got %d, want 1", len(data.Params))
	}
}

func TestParseCast(t *testing.T) {
	builder, id := mustParseExpr(t, "cast {t = List t} by refl_equiv {Int} v")

	data, ok := builder.Exprs.Cast(id)
	if !ok {
		t.Fatalf("expected Cast, got %v", builder.Exprs.Get(id).Kind)
	}
	if got := builder.Name(data.Param.Name); got != "t" {
		t.Fatalf("param: got %q, want t", got)
	}
	if _, ok := builder.Types.App(data.TypeBody); !ok {
		t.Fatal("shape should be the application type")
	}
	if _, ok := builder.Exprs.ReflEquiv(data.Proof); !ok {
		t.Fatal("proof should be the reflexivity witness")
	}
	if got := exprVarName(t, builder, data.Body); got != "v" {
		t.Fatalf("body: got %q, want v", got)
	}
}

func TestParseCast_ProofIsCallable(t *testing.T) {
	// The proof extends through its postfix forms, so the body starts
	// only after 'prove {Int} (w)'.
	builder, id := mustParseExpr(t, "cast {t = t} by prove {Int} (w) v")
	data, ok := builder.Exprs.Cast(id)
	if !ok {
		t.Fatalf("expected Cast, got %v", builder.Exprs.Get(id).Kind)
	}
	if _, ok := builder.Exprs.App(data.Proof); !ok {
		t.Fatal("proof should be the applied prover")
	}
	if got := exprVarName(t, builder, data.Body); got != "v" {
		t.Fatalf("body: got %q, want v", got)
	}
}

func TestParseBlock_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{"let_missing_in", "let x = v b", diag.SynUnexpectedToken},
		{"let_missing_assign", "let x v in b", diag.SynUnexpectedToken},
		{"func_missing_colon", "func (x Int) b", diag.SynUnexpectedToken},
		{"func_missing_paren", "func x: Int b", diag.SynUnexpectedToken},
		{"make_exists_missing_of", "make_exists {t = Int} {t} v", diag.SynUnexpectedToken},
		{"cast_missing_by", "cast {t = Int} v", diag.SynUnexpectedToken},
		{"forall_without_group", "forall x", diag.SynUnexpectedToken},
		{"let_exists_missing_payload", "let_exists {t} = v in b", diag.SynExpectName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok, bag := parseExprSource(t, tt.input)
			if ok {
				t.Fatal("expected failure")
			}
			wantCode(t, bag, tt.wantCode)
		})
	}
}
