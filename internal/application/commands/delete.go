package commands

import (
	"context"
	"fmt"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedPath  string
	FilesChanged int
	Message      string
}

// DeleteCommand removes a note and marks every link to it as dead
// (strike-through, left in place so the link text stays visible).
type DeleteCommand struct {
	repo   ports.VaultRepository
	linker *application.Linker

	Path string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(repo ports.VaultRepository, linker *application.Linker, path string) *DeleteCommand {
	return &DeleteCommand{
		repo:   repo,
		linker: linker,
		Path:   path,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return application.ValidateRequired("target", c.Path)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.repo.ValidatePath(c.Path); err != nil {
		return nil, err
	}

	if c.repo.NoteExists(c.Path) {
		if err := c.repo.DeleteNote(c.Path); err != nil {
			return nil, application.Internal("delete note", err)
		}
	}

	count, err := c.linker.UpdateAll(c.Path, "", "", "")
	if err != nil {
		return nil, err
	}

	return &DeleteResult{
		DeletedPath:  c.Path,
		FilesChanged: count,
		Message:      fmt.Sprintf("Deleted %s, marked links in %d notes", c.Path, count),
	}, nil
}
