package sqlite

import (
	"errors"
	"testing"
	"time"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/domain"
)

func openStore(t *testing.T) *TrashStore {
	t.Helper()
	s := NewTrashStore()
	if err := s.Open(t.TempDir()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndGet(t *testing.T) {
	s := openStore(t)

	id, err := s.Record(&domain.TrashEntry{
		OriginalPath: "project",
		TrashPath:    ".trash/123-project",
		TrashedAt:    time.Now().Unix(),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}

	entry, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.OriginalPath != "project" || entry.TrashPath != ".trash/123-project" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Restored {
		t.Error("fresh entry marked restored")
	}
}

func TestGet_NotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.Get(42)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_FiltersRestored(t *testing.T) {
	s := openStore(t)

	id1, _ := s.Record(&domain.TrashEntry{OriginalPath: "one", TrashPath: ".trash/1-one", TrashedAt: 100})
	s.Record(&domain.TrashEntry{OriginalPath: "two", TrashPath: ".trash/2-two", TrashedAt: 200})

	if err := s.MarkRestored(id1); err != nil {
		t.Fatalf("MarkRestored: %v", err)
	}

	active, err := s.List(false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 1 || active[0].OriginalPath != "two" {
		t.Errorf("active = %+v, want only 'two'", active)
	}

	all, err := s.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d entries, want 2", len(all))
	}
	// Newest first.
	if all[0].OriginalPath != "two" {
		t.Errorf("expected newest entry first, got %+v", all[0])
	}
}

func TestMarkRestored_NotFound(t *testing.T) {
	s := openStore(t)

	if err := s.MarkRestored(7); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
