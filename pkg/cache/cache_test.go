package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}

	if _, hit, err := c.Get(ctx, "artifact:x"); err != nil || hit {
		t.Fatalf("Get on empty cache = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "artifact:x", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:x")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("data = %q, want <svg/>", data)
	}

	if err := c.Delete(ctx, "artifact:x"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:x"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "artifact:x"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheNoTTL(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	c.now = func() time.Time { return time.Now().Add(100 * 365 * 24 * time.Hour) }
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Error("entry without ttl should never expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v, want clean miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
}

func TestHashJSON(t *testing.T) {
	type doc struct{ A, B int }
	h1, err := HashJSON(doc{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := HashJSON(doc{1, 3})
	if h1 == h2 {
		t.Error("different values should hash differently")
	}
	if _, err := HashJSON(func() {}); err == nil {
		t.Error("expected error for unencodable value")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	sk1 := k.SpecKey("classic", SpecKeyOpts{FrontTheme: "harbor_light", BackTheme: "harbor_dark", ContentHash: "abc"})
	sk2 := k.SpecKey("classic", SpecKeyOpts{FrontTheme: "harbor_light", BackTheme: "harbor_dark", ContentHash: "abd"})
	if sk1 == sk2 {
		t.Error("content changes should change the spec key")
	}
	if !strings.HasPrefix(sk1, "spec:") {
		t.Errorf("SpecKey = %q, want spec: prefix", sk1)
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Side: "front"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Side: "front"})
	ak3 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Side: "back"})
	if ak1 == ak2 || ak1 == ak3 {
		t.Error("different ArtifactKeyOpts should produce different keys")
	}
	if ak1 != k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Side: "front"}) {
		t.Error("ArtifactKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "dir:123:")

	want := "dir:123:" + inner.ArtifactKey("h", ArtifactKeyOpts{Format: "html"})
	if got := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "html"}); got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}
	if got := scoped.SpecKey("classic", SpecKeyOpts{}); !strings.HasPrefix(got, "dir:123:spec:") {
		t.Errorf("SpecKey = %q, want prefixed", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "p:")
	want := "p:" + NewDefaultKeyer().SpecKey("x", SpecKeyOpts{})
	if got := scoped.SpecKey("x", SpecKeyOpts{}); got != want {
		t.Errorf("SpecKey with nil inner = %q, want %q", got, want)
	}
}
