package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vaultkeeper/internal/application"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "one")
	writeFile(t, root, "sub/b.md", "two")
	writeFile(t, root, "sub/deep/c.MD", "three")
	writeFile(t, root, "image.png", "binary")
	writeFile(t, root, ".obsidian/workspace.md", "config")
	writeFile(t, root, ".trash/1-old/gone.md", "trashed")

	repo := NewRepository(root)
	files, err := repo.ListMarkdownFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.md", "sub/b.md", "sub/deep/c.MD"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i, f := range files {
		if f != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, f, want[i])
		}
	}
}

func TestValidatePath(t *testing.T) {
	root := t.TempDir()
	repo := NewRepository(root)

	tests := []struct {
		name      string
		candidate string
		wantErr   bool
	}{
		{"relative inside", "notes/a.md", false},
		{"root itself", ".", false},
		{"absolute inside", filepath.Join(root, "a.md"), false},
		{"parent escape", "../outside.md", true},
		{"nested escape", "notes/../../outside.md", true},
		{"absolute outside", filepath.Join(os.TempDir(), "elsewhere.md"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.ValidatePath(tt.candidate)
			if tt.wantErr {
				var pErr *application.PathViolationError
				if !errors.As(err, &pErr) {
					t.Errorf("expected PathViolationError, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReadWriteNote(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "original")
	repo := NewRepository(root)

	text, err := repo.ReadNote("a.md")
	if err != nil || text != "original" {
		t.Fatalf("ReadNote = %q, %v", text, err)
	}

	if err := repo.WriteNote("a.md", "updated"); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}
	text, _ = repo.ReadNote("a.md")
	if text != "updated" {
		t.Errorf("after write, ReadNote = %q", text)
	}

	if !repo.NoteExists("a.md") {
		t.Error("NoteExists(a.md) = false")
	}
	if repo.NoteExists("missing.md") {
		t.Error("NoteExists(missing.md) = true")
	}
}

func TestMoveAndDeleteNote(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "content")
	repo := NewRepository(root)

	if err := repo.MoveNote("a.md", "sub/b.md"); err != nil {
		t.Fatalf("MoveNote: %v", err)
	}
	if repo.NoteExists("a.md") {
		t.Error("source still exists after move")
	}
	text, err := repo.ReadNote("sub/b.md")
	if err != nil || text != "content" {
		t.Fatalf("moved note = %q, %v", text, err)
	}

	if err := repo.DeleteNote("sub/b.md"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if repo.NoteExists("sub/b.md") {
		t.Error("note still exists after delete")
	}
}

func TestTrashAndRestoreDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "project/a.md", "one")
	writeFile(t, root, "project/sub/b.md", "two")
	repo := NewRepository(root)

	trashRel, err := repo.TrashDir("project")
	if err != nil {
		t.Fatalf("TrashDir: %v", err)
	}
	if !strings.HasPrefix(trashRel, TrashDirName+"/") {
		t.Errorf("trash path %q not under %s/", trashRel, TrashDirName)
	}
	if _, err := os.Stat(filepath.Join(root, "project")); !os.IsNotExist(err) {
		t.Error("source directory still present after trash")
	}

	// Trashed notes disappear from enumeration.
	files, err := repo.ListMarkdownFiles()
	if err != nil {
		t.Fatalf("ListMarkdownFiles: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("trashed notes still enumerated: %v", files)
	}

	if err := repo.RestoreDir(trashRel, "project"); err != nil {
		t.Fatalf("RestoreDir: %v", err)
	}
	text, err := repo.ReadNote("project/sub/b.md")
	if err != nil || text != "two" {
		t.Errorf("restored note = %q, %v", text, err)
	}
}

func TestRestoreDir_DestinationConflict(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "project/a.md", "one")
	repo := NewRepository(root)

	trashRel, err := repo.TrashDir("project")
	if err != nil {
		t.Fatalf("TrashDir: %v", err)
	}
	writeFile(t, root, "project/other.md", "conflict")

	if err := repo.RestoreDir(trashRel, "project"); err == nil {
		t.Error("expected restore into existing directory to fail")
	}
}
