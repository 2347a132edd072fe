package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func collectEvents(t *testing.T, events <-chan string, errs <-chan error, want int) map[string]bool {
	t.Helper()
	seen := map[string]bool{}
	deadline := time.After(10 * time.Second)
	for len(seen) < want {
		select {
		case p, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed after %d of %d events", len(seen), want)
			}
			seen[p] = true
		case err := <-errs:
			if err != nil {
				t.Logf("watcher error: %v", err)
			}
		case <-deadline:
			t.Fatalf("timed out after %d of %d events", len(seen), want)
		}
	}
	return seen
}

// A burst of drops with a short debounce keeps the timer firing while new
// events are still arriving.
func TestStartWatcher_DebouncedBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 2 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	const n = 100
	want := map[string]bool{}
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("ord-%03d.json", i))
		if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		want[path] = true
	}

	seen := collectEvents(t, events, errs, n)
	for path := range want {
		if !seen[path] {
			t.Errorf("path %s never emitted", path)
		}
	}

	// Cancelling must close the event channel without further sends.
	cancel()
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("event channel not closed after cancel")
		}
	}
}

func TestStartWatcher_InitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "ord-existing.json")
	if err := os.WriteFile(existing, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	skipped := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(skipped, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	seen := collectEvents(t, events, errs, 1)
	if !seen[existing] {
		t.Errorf("initial scan missed %s, saw %v", existing, seen)
	}
	if seen[skipped] {
		t.Errorf("initial scan emitted disallowed extension %s", skipped)
	}
}

func TestStartWatcher_RequiresRoots(t *testing.T) {
	if _, _, err := StartWatcher(context.Background(), WatchConfig{}, nil); err == nil {
		t.Fatal("expected error for empty roots")
	}
}
