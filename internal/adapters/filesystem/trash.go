package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TrashDir moves a directory into the vault's trash folder under a
// timestamped name and returns the trash-relative destination path.
func (r *Repository) TrashDir(relPath string) (string, error) {
	src := r.abs(relPath)
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("trash source not found: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("trash source is not a directory: %s", relPath)
	}

	trashRoot := filepath.Join(r.vaultPath, TrashDirName)
	if err := os.MkdirAll(trashRoot, 0755); err != nil {
		return "", fmt.Errorf("failed to create trash directory: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(src))
	dst := filepath.Join(trashRoot, name)
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("failed to move to trash: %w", err)
	}
	return filepath.ToSlash(filepath.Join(TrashDirName, name)), nil
}

// RestoreDir moves a trashed directory back to its original location.
// The original parent directory is recreated when needed.
func (r *Repository) RestoreDir(trashRel, originalRel string) error {
	src := r.abs(trashRel)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("trash entry not found on disk: %w", err)
	}
	dst := r.abs(originalRel)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("restore destination already exists: %s", originalRel)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to recreate parent directory: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to restore from trash: %w", err)
	}
	return nil
}
