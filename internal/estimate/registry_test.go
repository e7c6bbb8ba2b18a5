package estimate

import (
	"testing"
	"time"
)

func TestRegistryCreateAndLookup(t *testing.T) {
	r := NewRegistry(Deps{Logger: quietLogger()})

	id, s := r.Create()
	got, ok := r.Lookup(id)
	if !ok || got != s {
		t.Fatalf("Lookup(%q) = %v, %v", id, got, ok)
	}

	if _, ok := r.Lookup("not-a-uuid"); ok {
		t.Fatalf("expected lookup of malformed id to fail")
	}
	if _, ok := r.Lookup("5b0c3f0e-8c1c-4bd4-9b3a-2f6f1b9e8a10"); ok {
		t.Fatalf("expected lookup of unknown id to fail")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryPruneDropsIdleSessions(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	r := NewRegistry(Deps{Logger: quietLogger()})
	r.now = func() time.Time { return now }

	staleID, _ := r.Create()
	busyID, busy := r.Create()
	if err := busy.Dispatch(GenerateStarted{}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	now = now.Add(2 * time.Hour)
	freshID, _ := r.Create()

	if removed := r.Prune(time.Hour); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok := r.Lookup(staleID); ok {
		t.Fatalf("stale session should be pruned")
	}
	if _, ok := r.Lookup(busyID); !ok {
		t.Fatalf("session with request in flight must be kept")
	}
	if _, ok := r.Lookup(freshID); !ok {
		t.Fatalf("fresh session must be kept")
	}
}
