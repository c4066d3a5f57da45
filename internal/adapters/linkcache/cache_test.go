package linkcache

import (
	"fmt"
	"sort"
	"testing"
	"time"
)

// stubRepo provides just enough of ports.VaultRepository for cache tests.
type stubRepo struct {
	notes    map[string]string
	listErr  error
	failRead string
	reads    int
}

func (r *stubRepo) Root() string                  { return "/vault" }
func (r *stubRepo) ValidatePath(string) error     { return nil }
func (r *stubRepo) WriteNote(p, t string) error   { r.notes[p] = t; return nil }
func (r *stubRepo) NoteExists(p string) bool      { _, ok := r.notes[p]; return ok }
func (r *stubRepo) MoveNote(o, n string) error    { return nil }
func (r *stubRepo) DeleteNote(string) error       { return nil }
func (r *stubRepo) TrashDir(string) (string, error) { return "", nil }
func (r *stubRepo) RestoreDir(a, b string) error  { return nil }

func (r *stubRepo) ListMarkdownFiles() ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []string
	for p := range r.notes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubRepo) ReadNote(p string) (string, error) {
	r.reads++
	if p == r.failRead {
		return "", fmt.Errorf("read %s: permission denied", p)
	}
	text, ok := r.notes[p]
	if !ok {
		return "", fmt.Errorf("no such note: %s", p)
	}
	return text, nil
}

func TestGet_CachesWithinTTL(t *testing.T) {
	repo := &stubRepo{notes: map[string]string{"a.md": "[[Note]]"}}
	c := New(repo, time.Minute)

	first, err := c.Get(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	readsAfterBuild := repo.reads

	second, err := c.Get(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.reads != readsAfterBuild {
		t.Error("second Get within TTL should not re-read the vault")
	}
	if first != second {
		t.Error("expected the same cached index instance")
	}
}

func TestGet_ForceRebuilds(t *testing.T) {
	repo := &stubRepo{notes: map[string]string{"a.md": "[[Note]]"}}
	c := New(repo, time.Minute)

	if _, err := c.Get(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.notes["b.md"] = "[[Note]]"

	idx, err := c.Get(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(idx.Sources("Note")); got != 2 {
		t.Errorf("forced rebuild missed new note: %d sources, want 2", got)
	}
}

func TestGet_RebuildsAfterTTL(t *testing.T) {
	repo := &stubRepo{notes: map[string]string{"a.md": "[[Note]]"}}
	c := New(repo, time.Minute)

	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	if _, err := c.Get(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.notes["b.md"] = "[[Note]]"

	// Still fresh.
	now = now.Add(30 * time.Second)
	idx, _ := c.Get(false)
	if got := len(idx.Sources("Note")); got != 1 {
		t.Errorf("cache rebuilt before TTL elapsed: %d sources", got)
	}

	// Stale.
	now = now.Add(time.Minute)
	idx, _ = c.Get(false)
	if got := len(idx.Sources("Note")); got != 2 {
		t.Errorf("cache not rebuilt after TTL: %d sources, want 2", got)
	}
}

func TestInvalidate(t *testing.T) {
	repo := &stubRepo{notes: map[string]string{"a.md": "[[Note]]"}}
	c := New(repo, time.Minute)

	if _, err := c.Get(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.notes["b.md"] = "[[Note]]"
	c.Invalidate()

	idx, err := c.Get(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(idx.Sources("Note")); got != 2 {
		t.Errorf("Get after Invalidate should rebuild: %d sources, want 2", got)
	}
}

func TestGet_EnumerationFailureIsFatal(t *testing.T) {
	repo := &stubRepo{notes: map[string]string{}, listErr: fmt.Errorf("disk gone")}
	c := New(repo, time.Minute)

	if _, err := c.Get(true); err == nil {
		t.Fatal("expected enumeration failure to propagate")
	}
}

func TestGet_UnreadableNoteYieldsPartialIndex(t *testing.T) {
	repo := &stubRepo{
		notes:    map[string]string{"a.md": "[[Note]]", "b.md": "[[Note]]"},
		failRead: "b.md",
	}
	c := New(repo, time.Minute)

	idx, err := c.Get(true)
	if err != nil {
		t.Fatalf("one unreadable note must not abort the build: %v", err)
	}
	if got := len(idx.Sources("Note")); got != 1 {
		t.Errorf("expected partial index with 1 source, got %d", got)
	}
}
