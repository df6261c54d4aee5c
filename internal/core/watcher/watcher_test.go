// # internal/core/watcher/watcher_test.go
package watcher

import (
	"clangq/internal/shared/util"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcher_RejectsNilCallback(t *testing.T) {
	w, err := NewWatcher(100*time.Millisecond, nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for nil callback")
	}
	if !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("expected os.ErrInvalid, got %v", err)
	}
	if w != nil {
		t.Fatal("expected nil watcher when callback is invalid")
	}
}

func TestNewWatcher_RejectsBadPattern(t *testing.T) {
	if _, err := NewWatcher(time.Millisecond, []string{"["}, nil, func([]string) {}); err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}

func waitFor(t *testing.T, changed <-chan []string, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case paths := <-changed:
			for _, p := range paths {
				if p == want {
					return
				}
			}
		case <-deadline:
			t.Fatalf("timed out waiting for change to %s", want)
		}
	}
}

func TestWatcher(t *testing.T) {
	tmpDir := t.TempDir()

	changedFiles := make(chan []string, 8)
	w, err := NewWatcher(100*time.Millisecond, []string{"build"}, nil, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.MkdirAll(filepath.Join(tmpDir, "build"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch([]string{tmpDir}); err != nil {
		t.Fatal(err)
	}

	header := filepath.Join(tmpDir, "api.h")
	if err := os.WriteFile(header, []byte("int api(void);\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, changedFiles, header, 2*time.Second)

	// Non-source files and excluded directories stay silent.
	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0o644)
	os.WriteFile(filepath.Join(tmpDir, "build", "gen.h"), []byte("x"), 0o644)
	select {
	case paths := <-changedFiles:
		t.Errorf("unexpected change batch %v", paths)
	case <-time.After(400 * time.Millisecond):
	}

	// New directory should be recursively watched after create.
	subdir := filepath.Join(tmpDir, "include")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	nested := filepath.Join(subdir, "nested.hpp")
	if err := os.WriteFile(nested, []byte("struct N;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, changedFiles, nested, 2*time.Second)
}

func TestWatcher_TrackedFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "module.modulemap")
	if err := os.WriteFile(target, []byte("module m {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changedFiles := make(chan []string, 8)
	w, err := NewWatcher(50*time.Millisecond, nil, nil, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{target}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("module m { header \"a.h\" }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, changedFiles, target, 2*time.Second)
}

func TestWatcher_RateLimited(t *testing.T) {
	tmpDir := t.TempDir()

	var batches []time.Time
	changedFiles := make(chan []string, 8)
	limiter := util.NewLimiter(2, 1)
	w, err := NewWatcher(20*time.Millisecond, nil, limiter, func(paths []string) {
		batches = append(batches, time.Now())
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch([]string{tmpDir}); err != nil {
		t.Fatal(err)
	}

	first := filepath.Join(tmpDir, "a.c")
	os.WriteFile(first, []byte("int a;\n"), 0o644)
	waitFor(t, changedFiles, first, 2*time.Second)

	second := filepath.Join(tmpDir, "b.c")
	os.WriteFile(second, []byte("int b;\n"), 0o644)
	waitFor(t, changedFiles, second, 3*time.Second)

	if len(batches) < 2 {
		t.Fatalf("expected two batches, got %d", len(batches))
	}
	if gap := batches[len(batches)-1].Sub(batches[0]); gap < 300*time.Millisecond {
		t.Fatalf("expected throttled second batch, gap was %v", gap)
	}
}
