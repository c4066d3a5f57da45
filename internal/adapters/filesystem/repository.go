package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vaultkeeper/internal/application"
)

// TrashDirName is the vault-local folder trashed directories move into.
const TrashDirName = ".trash"

// Repository implements ports.VaultRepository on a vault directory tree.
type Repository struct {
	vaultPath string
}

// NewRepository creates a new filesystem repository
func NewRepository(vaultPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	abs, err := filepath.Abs(vaultPath)
	if err == nil {
		vaultPath = abs
	}
	return &Repository{vaultPath: vaultPath}
}

// Root returns the absolute vault root.
func (r *Repository) Root() string {
	return r.vaultPath
}

// abs resolves a vault-relative path to an absolute one.
func (r *Repository) abs(relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	return filepath.Join(r.vaultPath, filepath.FromSlash(relPath))
}

// ValidatePath rejects candidates resolving outside the vault root.
func (r *Repository) ValidatePath(candidate string) error {
	rel, err := filepath.Rel(r.vaultPath, r.abs(candidate))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &application.PathViolationError{Path: candidate, Root: r.vaultPath}
	}
	return nil
}

// ListMarkdownFiles returns every .md file under the root, vault-relative
// with forward slashes, sorted. Hidden directories (.trash, .obsidian,
// .git) are skipped, as are unreadable subtrees.
func (r *Repository) ListMarkdownFiles() ([]string, error) {
	var files []string
	err := filepath.Walk(r.vaultPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != r.vaultPath {
			return filepath.SkipDir
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(r.vaultPath, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// ReadNote reads a note's text by vault-relative path.
func (r *Repository) ReadNote(relPath string) (string, error) {
	data, err := os.ReadFile(r.abs(relPath))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteNote writes a note's text by vault-relative path.
func (r *Repository) WriteNote(relPath, text string) error {
	return os.WriteFile(r.abs(relPath), []byte(text), 0644)
}

// NoteExists reports whether a note exists at the vault-relative path.
func (r *Repository) NoteExists(relPath string) bool {
	info, err := os.Stat(r.abs(relPath))
	return err == nil && !info.IsDir()
}

// MoveNote renames a note on disk, creating the destination's parent
// directory when needed.
func (r *Repository) MoveNote(oldRel, newRel string) error {
	dst := r.abs(newRel)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	if err := os.Rename(r.abs(oldRel), dst); err != nil {
		return fmt.Errorf("failed to move note: %w", err)
	}
	return nil
}

// DeleteNote removes a note from disk.
func (r *Repository) DeleteNote(relPath string) error {
	if err := os.Remove(r.abs(relPath)); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
