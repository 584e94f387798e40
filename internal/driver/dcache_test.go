package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"lace/internal/project"
)

func newTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("lace")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	key := project.Digest(sha256.Sum256([]byte("content")))

	in := &CheckPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "demo.lace",
		Digest: key,
		Kind:   uint8(KindExpr),
		Clean:  false,
		Diagnostics: []CachedDiagnostic{
			{Severity: 2, Code: 2001, Message: "unexpected token", Start: 3, End: 7},
		},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out CheckPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected a hit")
	}
	if out.Path != in.Path || out.Clean != in.Clean || len(out.Diagnostics) != 1 {
		t.Fatalf("payload mismatch: %+v", out)
	}
	if out.Diagnostics[0] != in.Diagnostics[0] {
		t.Fatalf("diagnostic mismatch: %+v", out.Diagnostics[0])
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache := newTestCache(t)
	var out CheckPayload
	hit, err := cache.Get(sha256.Sum256([]byte("never stored")), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatal("expected a miss")
	}
}

func TestDiskCacheStaleSchemaIsMiss(t *testing.T) {
	cache := newTestCache(t)
	key := project.Digest(sha256.Sum256([]byte("content")))
	if err := cache.Put(key, &CheckPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var out CheckPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatal("stale schema must read as a miss")
	}
}

func TestDiskCacheNilIsNoop(t *testing.T) {
	var cache *DiskCache
	key := project.Digest(sha256.Sum256([]byte("x")))
	if err := cache.Put(key, &CheckPayload{}); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	var out CheckPayload
	if hit, err := cache.Get(key, &out); hit || err != nil {
		t.Fatalf("nil Get: hit=%v err=%v", hit, err)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache := newTestCache(t)
	key := project.Digest(sha256.Sum256([]byte("content")))
	if err := cache.Put(key, &CheckPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cache.dir, "check")); !os.IsNotExist(err) {
		t.Fatalf("cache dir should be gone, stat err: %v", err)
	}
}
