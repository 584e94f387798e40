package source

import "testing"

func TestInternerDedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("pair")
	b := in.Intern("pair")
	if a != b {
		t.Fatalf("same string interned to %d and %d", a, b)
	}
	if c := in.Intern("other"); c == a {
		t.Fatalf("distinct strings share ID %d", c)
	}
}

func TestInternerLookup(t *testing.T) {
	in := NewInterner()
	id := in.Intern("witness")
	if got, ok := in.Lookup(id); !ok || got != "witness" {
		t.Fatalf("Lookup(%d) = %q, %v", id, got, ok)
	}
	if got, ok := in.Lookup(NoStringID); !ok || got != "" {
		t.Fatalf("Lookup(NoStringID) = %q, %v", got, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatal("Lookup of unknown ID succeeded")
	}
}
