package parser

import (
	"testing"

	"lace/internal/ast"
	"lace/internal/diag"
)

func TestParseType_Atomic(t *testing.T) {
	t.Run("unit", func(t *testing.T) {
		builder, id := mustParseType(t, "()")
		if kind := builder.Types.Get(id).Kind; kind != ast.TypeUnit {
			t.Fatalf("kind: got %v, want Unit", kind)
		}
	})

	t.Run("variable", func(t *testing.T) {
		builder, id := mustParseType(t, "Int")
		if got := varName(t, builder, id); got != "Int" {
			t.Fatalf("name: got %q", got)
		}
	})

	t.Run("quoted_variable", func(t *testing.T) {
		builder, id := mustParseType(t, "`odd type`")
		if got := varName(t, builder, id); got != "odd type" {
			t.Fatalf("name: got %q", got)
		}
	})

	t.Run("parenthesized", func(t *testing.T) {
		builder, id := mustParseType(t, "(Int)")
		if got := varName(t, builder, id); got != "Int" {
			t.Fatalf("name: got %q", got)
		}
	})
}

func TestParseType_AppLeftAssociative(t *testing.T) {
	builder, id := mustParseType(t, "Map Key Value")

	outer, ok := builder.Types.App(id)
	if !ok {
		t.Fatalf("expected App, got %v", builder.Types.Get(id).Kind)
	}
	if got := varName(t, builder, outer.Arg); got != "Value" {
		t.Fatalf("outer arg: got %q, want Value", got)
	}

	inner, ok := builder.Types.App(outer.Ctor)
	if !ok {
		t.Fatalf("expected nested App, got %v", builder.Types.Get(outer.Ctor).Kind)
	}
	if got := varName(t, builder, inner.Ctor); got != "Map" {
		t.Fatalf("ctor: got %q, want Map", got)
	}
	if got := varName(t, builder, inner.Arg); got != "Key" {
		t.Fatalf("inner arg: got %q, want Key", got)
	}
}

func TestParseType_Equiv(t *testing.T) {
	t.Run("atomic_operands", func(t *testing.T) {
		builder, id := mustParseType(t, "equiv Int Float")
		data, ok := builder.Types.Equiv(id)
		if !ok {
			t.Fatalf("expected Equiv, got %v", builder.Types.Get(id).Kind)
		}
		if varName(t, builder, data.Orig) != "Int" || varName(t, builder, data.Dest) != "Float" {
			t.Fatal("operands misplaced")
		}
	})

	t.Run("parenthesized_arrow_operand", func(t *testing.T) {
		builder, id := mustParseType(t, "equiv (A -> B) C")
		data, ok := builder.Types.Equiv(id)
		if !ok {
			t.Fatalf("expected Equiv, got %v", builder.Types.Get(id).Kind)
		}
		if _, ok := builder.Types.Func(data.Orig); !ok {
			t.Fatal("orig should be the parenthesized function type")
		}
	})

	t.Run("missing_second_operand", func(t *testing.T) {
		_, _, ok, bag := parseTypeSource(t, "equiv Int")
		if ok {
			t.Fatal("expected failure")
		}
		wantCode(t, bag, diag.SynUnexpectedEOF)
	})
}

func TestParseType_ArrowRightAssociative(t *testing.T) {
	builder, id := mustParseType(t, "A -> B -> C")

	outer, ok := builder.Types.Func(id)
	if !ok {
		t.Fatalf("expected Func, got %v", builder.Types.Get(id).Kind)
	}
	if got := varName(t, builder, outer.Arg); got != "A" {
		t.Fatalf("arg: got %q, want A", got)
	}

	inner, ok := builder.Types.Func(outer.Ret)
	if !ok {
		t.Fatalf("ret should be a Func, got %v", builder.Types.Get(outer.Ret).Kind)
	}
	if varName(t, builder, inner.Arg) != "B" || varName(t, builder, inner.Ret) != "C" {
		t.Fatal("inner arrow misplaced")
	}
}

func TestParseType_ArrowArgMustBeAtomic(t *testing.T) {
	_, _, ok, bag := parseTypeSource(t, "List Int -> Int")
	if ok {
		t.Fatal("expected failure")
	}
	wantCode(t, bag, diag.SynFuncArgNotAtomic)

	// The same type parses once the application is parenthesized.
	builder, id := mustParseType(t, "(List Int) -> Int")
	if _, ok := builder.Types.Func(id); !ok {
		t.Fatal("parenthesized form should parse as Func")
	}
}

func TestParseType_QuantifierDesugaring(t *testing.T) {
	builder, id := mustParseType(t, "exists {a} {b} T")

	outer, ok := builder.Types.Quantified(id)
	if !ok {
		t.Fatalf("expected Quantified, got %v", builder.Types.Get(id).Kind)
	}
	if outer.Quant != ast.QuantExists {
		t.Fatalf("quantifier: got %v, want exists", outer.Quant)
	}
	// First declared parameter is the outermost binder.
	if got := builder.Name(outer.Param.Name); got != "a" {
		t.Fatalf("outer param: got %q, want a", got)
	}

	inner, ok := builder.Types.Quantified(outer.Body)
	if !ok {
		t.Fatalf("body should be Quantified, got %v", builder.Types.Get(outer.Body).Kind)
	}
	if got := builder.Name(inner.Param.Name); got != "b" {
		t.Fatalf("inner param: got %q, want b", got)
	}
	if got := varName(t, builder, inner.Body); got != "T" {
		t.Fatalf("body: got %q, want T", got)
	}
}

func TestParseType_ForallQuantifier(t *testing.T) {
	builder, id := mustParseType(t, "forall {t} t -> t")
	q, ok := builder.Types.Quantified(id)
	if !ok {
		t.Fatalf("expected Quantified, got %v", builder.Types.Get(id).Kind)
	}
	if q.Quant != ast.QuantForAll {
		t.Fatalf("quantifier: got %v, want forall", q.Quant)
	}
	if _, ok := builder.Types.Func(q.Body); !ok {
		t.Fatal("quantifier body should be the arrow")
	}
}

func TestParseType_PairRightNested(t *testing.T) {
	builder, id := mustParseType(t, "A, B, C")

	outer, ok := builder.Types.Pair(id)
	if !ok {
		t.Fatalf("expected Pair, got %v", builder.Types.Get(id).Kind)
	}
	if got := varName(t, builder, outer.Left); got != "A" {
		t.Fatalf("left: got %q, want A", got)
	}

	inner, ok := builder.Types.Pair(outer.Right)
	if !ok {
		t.Fatalf("right should be Pair, got %v", builder.Types.Get(outer.Right).Kind)
	}
	if varName(t, builder, inner.Left) != "B" || varName(t, builder, inner.Right) != "C" {
		t.Fatal("inner pair misplaced")
	}
}

func TestParseType_TrailingComma(t *testing.T) {
	for _, input := range []string{"A,", "A, B,", "(A, B,)"} {
		t.Run(input, func(t *testing.T) {
			mustParseType(t, input)
		})
	}
}

func TestParseType_PairLooserThanQuantifier(t *testing.T) {
	builder, id := mustParseType(t, "forall {a} a, B")
	pair, ok := builder.Types.Pair(id)
	if !ok {
		t.Fatalf("expected Pair at the top, got %v", builder.Types.Get(id).Kind)
	}
	if _, ok := builder.Types.Quantified(pair.Left); !ok {
		t.Fatal("pair left should be the quantified type")
	}
}

func TestParseType_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{"empty", "", diag.SynUnexpectedEOF},
		{"unclosed_paren", "(A, B", diag.SynUnclosedParen},
		{"unclosed_param_group", "forall {a T", diag.SynUnclosedBrace},
		{"quantifier_without_group", "forall T", diag.SynUnexpectedToken},
		{"arrow_without_ret", "A ->", diag.SynUnexpectedEOF},
		{"keyword_as_type", "A -> in", diag.SynExpectType},
		{"trailing_tokens", "A -> B }", diag.SynTrailingInput},
		{"star_unused", "A * B", diag.SynTrailingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok, bag := parseTypeSource(t, tt.input)
			if ok {
				t.Fatal("expected failure")
			}
			wantCode(t, bag, tt.wantCode)
		})
	}
}
