package driver

import (
	"context"
	"testing"

	"lace/internal/diag"
)

func TestCheckParsesManyFiles(t *testing.T) {
	good := writeFile(t, "good.lace", "let x = v in move x\n")
	bad := writeFile(t, "bad.lace", "let x = v\n")

	results, err := Check(context.Background(), []string{good, bad}, CheckOptions{
		Kind:           KindExpr,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results: %d", len(results))
	}
	if !results[0].OK || results[0].Err != nil {
		t.Fatalf("good file: ok=%v err=%v", results[0].OK, results[0].Err)
	}
	if results[1].OK || !results[1].Bag.HasErrors() {
		t.Fatalf("bad file must fail, bag len %d", results[1].Bag.Len())
	}
}

func TestCheckReportsMissingFiles(t *testing.T) {
	results, err := Check(context.Background(), []string{"/no/such/file.lace"}, CheckOptions{
		Kind:           KindExpr,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if results[0].Err == nil {
		t.Fatal("expected a load error")
	}
}

func TestCheckUsesCache(t *testing.T) {
	cache := newTestCache(t)
	path := writeFile(t, "demo.lace", "let x = v in b,\n")
	opts := CheckOptions{Kind: KindExpr, MaxDiagnostics: 16, Cache: cache}

	first, err := Check(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("first Check: %v", err)
	}
	if first[0].FromCache {
		t.Fatal("first run cannot come from cache")
	}

	second, err := Check(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second Check: %v", err)
	}
	if !second[0].FromCache {
		t.Fatal("second run must hit the cache")
	}
	if second[0].OK != first[0].OK || second[0].Bag.Len() != first[0].Bag.Len() {
		t.Fatalf("cached result diverges: ok %v/%v, bag %d/%d",
			first[0].OK, second[0].OK, first[0].Bag.Len(), second[0].Bag.Len())
	}
}

func TestCheckCacheReplaysDiagnostics(t *testing.T) {
	cache := newTestCache(t)
	path := writeFile(t, "bad.lace", "let = v in b\n")
	opts := CheckOptions{Kind: KindExpr, MaxDiagnostics: 16, Cache: cache}

	if _, err := Check(context.Background(), []string{path}, opts); err != nil {
		t.Fatalf("first Check: %v", err)
	}
	second, err := Check(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second Check: %v", err)
	}
	if !second[0].FromCache {
		t.Fatal("expected a cache hit")
	}
	if !second[0].Bag.HasCode(diag.SynEmptyLetBinding) {
		t.Fatal("cached diagnostics must survive the round trip")
	}
}

func TestCheckKindMismatchBypassesCache(t *testing.T) {
	cache := newTestCache(t)
	// Valid as a type, invalid as an expression.
	path := writeFile(t, "demo.lace", "List Int\n")

	asType, err := Check(context.Background(), []string{path},
		CheckOptions{Kind: KindType, MaxDiagnostics: 16, Cache: cache})
	if err != nil {
		t.Fatalf("type Check: %v", err)
	}
	if !asType[0].OK {
		t.Fatalf("type parse must succeed, bag len %d", asType[0].Bag.Len())
	}

	asExpr, err := Check(context.Background(), []string{path},
		CheckOptions{Kind: KindExpr, MaxDiagnostics: 16, Cache: cache})
	if err != nil {
		t.Fatalf("expr Check: %v", err)
	}
	if asExpr[0].FromCache {
		t.Fatal("a type-kind entry must not satisfy an expr-kind check")
	}
	if asExpr[0].OK {
		t.Fatal("juxtaposition is not an expression")
	}
}

func TestCheckEmptyInput(t *testing.T) {
	results, err := Check(context.Background(), nil, CheckOptions{Kind: KindExpr, MaxDiagnostics: 16})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results: %d", len(results))
	}
}
