package commands

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// TrashResult contains the result of trashing a directory
type TrashResult struct {
	EntryID      int64
	TrashPath    string
	NotesRemoved int
	FilesChanged int
	Message      string
}

// TrashCommand moves a directory into the vault trash, records the move
// in the manifest, and marks every link to the removed notes as dead.
type TrashCommand struct {
	repo   ports.VaultRepository
	store  ports.TrashStore
	linker *application.Linker

	DirPath string
}

// NewTrashCommand creates a new TrashCommand
func NewTrashCommand(repo ports.VaultRepository, store ports.TrashStore, linker *application.Linker, dirPath string) *TrashCommand {
	return &TrashCommand{
		repo:    repo,
		store:   store,
		linker:  linker,
		DirPath: dirPath,
	}
}

// Validate checks if the trash operation is valid
func (c *TrashCommand) Validate() error {
	return application.ValidateRequired("dirPath", c.DirPath)
}

// Execute runs the trash command
func (c *TrashCommand) Execute(ctx context.Context) (*TrashResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.repo.ValidatePath(c.DirPath); err != nil {
		return nil, err
	}

	// Snapshot the notes that are about to leave the tree; the link
	// rewrite needs their names after the directory is gone.
	all, err := c.repo.ListMarkdownFiles()
	if err != nil {
		return nil, application.Internal("list documents", err)
	}
	prefix := strings.TrimSuffix(c.DirPath, "/") + "/"
	var removed []string
	for _, p := range all {
		if strings.HasPrefix(p, prefix) {
			removed = append(removed, p)
		}
	}

	trashRel, err := c.repo.TrashDir(c.DirPath)
	if err != nil {
		return nil, application.Internal("trash directory", err)
	}

	id, err := c.store.Record(&domain.TrashEntry{
		OriginalPath: c.DirPath,
		TrashPath:    trashRel,
		TrashedAt:    time.Now().Unix(),
	})
	if err != nil {
		// The move already happened; a manifest failure must not hide it.
		log.Printf("vaultkeeper: trash manifest record failed: %v", err)
	}

	changed := 0
	for _, note := range removed {
		n, err := c.linker.UpdateAll(note, "", "", "")
		if err != nil {
			return nil, err
		}
		changed += n
	}

	return &TrashResult{
		EntryID:      id,
		TrashPath:    trashRel,
		NotesRemoved: len(removed),
		FilesChanged: changed,
		Message: fmt.Sprintf("Trashed %s (%d notes), marked links in %d notes",
			c.DirPath, len(removed), changed),
	}, nil
}
