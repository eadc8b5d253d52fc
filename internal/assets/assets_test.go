package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestCache(t *testing.T) {
	cache := NewCache()

	// Test miss
	_, ok := cache.Get("test")
	if ok {
		t.Error("expected cache miss")
	}

	// Test set and hit
	cache.Set("test", []byte("data"))
	data, ok := cache.Get("test")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != "data" {
		t.Errorf("expected 'data', got '%s'", string(data))
	}

	hits, misses := cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d hits and %d misses", hits, misses)
	}

	cache.Delete("test")
	if cache.Len() != 0 {
		t.Errorf("expected empty cache after delete, got %d", cache.Len())
	}

	cache.Set("a", nil)
	cache.Clear()
	if cache.Len() != 0 {
		t.Error("expected empty cache after clear")
	}
	hits, misses = cache.Stats()
	if hits != 0 || misses != 0 {
		t.Error("expected stats reset after clear")
	}
}

func TestManagerResolveOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(second, "cube.off"), "second")
	writeFile(t, filepath.Join(second, "only.off"), "only")
	writeFile(t, filepath.Join(first, "cube.off"), "first")

	m := NewManager(first, second)
	defer m.Close()

	data, err := m.Load("cube.off")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("expected first root to win, got %q", data)
	}

	data, err = m.Load("only.off")
	if err != nil || string(data) != "only" {
		t.Errorf("expected fallback to second root, got %q, %v", data, err)
	}

	if _, err := m.Load("missing.off"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerCachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.off")
	writeFile(t, path, "v1")

	m := NewManager(dir)
	defer m.Close()

	if _, err := m.Load("mesh.off"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	writeFile(t, path, "v2")

	data, _ := m.Load("mesh.off")
	if string(data) != "v1" {
		t.Errorf("expected cached v1, got %q", data)
	}

	m.Invalidate(path)
	data, _ = m.Load("mesh.off")
	if string(data) != "v2" {
		t.Errorf("expected v2 after invalidate, got %q", data)
	}
}

func TestManagerWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raytrace.frag")
	writeFile(t, path, "void main() {}")
	writeFile(t, filepath.Join(dir, "other.txt"), "x")

	m := NewManager(dir)
	defer m.Close()

	if m.Changes() != nil {
		t.Error("expected nil changes before Watch")
	}
	if _, err := m.Load("raytrace.frag"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.Watch("raytrace.frag"); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	writeFile(t, filepath.Join(dir, "other.txt"), "y")
	writeFile(t, path, "void main() { }")

	abs, _ := filepath.Abs(path)
	select {
	case got := <-m.Changes():
		if got != abs {
			t.Errorf("expected change for %s, got %s", abs, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	data, err := m.Load(abs)
	if err != nil {
		t.Fatalf("Load after change failed: %v", err)
	}
	if string(data) != "void main() { }" {
		t.Errorf("expected fresh contents after change, got %q", data)
	}
}

func TestWatchMissingFile(t *testing.T) {
	m := NewManager(t.TempDir())
	defer m.Close()

	if err := m.Watch("nope.frag"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	w.Close()
	w.Close()
}
