package commands

import (
	"context"
	"fmt"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/ports"
)

// RestoreResult contains the result of restoring a trashed directory
type RestoreResult struct {
	RestoredPath string
	Message      string
}

// RestoreCommand moves a trashed directory back to its original location
// and marks the manifest entry restored.
type RestoreCommand struct {
	repo  ports.VaultRepository
	store ports.TrashStore
	index ports.LinkIndexProvider

	EntryID int64
}

// NewRestoreCommand creates a new RestoreCommand
func NewRestoreCommand(repo ports.VaultRepository, store ports.TrashStore, index ports.LinkIndexProvider, entryID int64) *RestoreCommand {
	return &RestoreCommand{
		repo:    repo,
		store:   store,
		index:   index,
		EntryID: entryID,
	}
}

// Validate checks if the restore operation is valid
func (c *RestoreCommand) Validate() error {
	if c.EntryID <= 0 {
		return &application.ValidationError{
			Field:   "entryID",
			Message: "a positive trash entry ID is required",
		}
	}
	return nil
}

// Execute runs the restore command
func (c *RestoreCommand) Execute(ctx context.Context) (*RestoreResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.Get(c.EntryID)
	if err != nil {
		return nil, err
	}
	if entry.Restored {
		return nil, &application.ValidationError{
			Field:   "entryID",
			Message: fmt.Sprintf("entry %d was already restored", c.EntryID),
		}
	}

	if err := c.repo.RestoreDir(entry.TrashPath, entry.OriginalPath); err != nil {
		return nil, application.Internal("restore directory", err)
	}
	if err := c.store.MarkRestored(c.EntryID); err != nil {
		return nil, err
	}

	// The restored notes are addressable again; drop the stale index.
	c.index.Invalidate()

	return &RestoreResult{
		RestoredPath: entry.OriginalPath,
		Message:      fmt.Sprintf("Restored %s", entry.OriginalPath),
	}, nil
}
