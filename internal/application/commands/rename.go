package commands

import (
	"context"
	"fmt"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/ports"

	"vaultkeeper/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	OldPath      string
	NewPath      string
	FilesChanged int
	Message      string
}

// RenameCommand renames or moves a note and rewrites every link to it.
// With SourceVault and DestVault set it handles the cross-vault cases:
// the file move itself is then out of this vault's hands and only links
// are rewritten (plus the arrival note for moves into this vault).
type RenameCommand struct {
	repo   ports.VaultRepository
	linker *application.Linker

	OldPath     string
	NewPath     string
	SourceVault string
	DestVault   string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(repo ports.VaultRepository, linker *application.Linker, oldPath, newPath string) *RenameCommand {
	return &RenameCommand{
		repo:    repo,
		linker:  linker,
		OldPath: oldPath,
		NewPath: newPath,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if c.OldPath == "" && c.NewPath == "" {
		return &application.ValidationError{
			Field:   "oldPath",
			Message: "old path or new path is required",
		}
	}
	if (c.SourceVault == "") != (c.DestVault == "") {
		return &application.ValidationError{
			Field:   "sourceVault",
			Message: "source and destination vault names must be set together",
		}
	}
	if c.SourceVault == "" && c.NewPath == "" {
		return &application.ValidationError{
			Field:   "newPath",
			Message: "new path is required for an in-vault rename",
		}
	}
	return nil
}

// crossVault reports whether the command describes a cross-vault move.
func (c *RenameCommand) crossVault() bool {
	return c.SourceVault != "" && c.DestVault != ""
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// In-vault rename: move the file first so the link rewrite runs
	// against the post-move tree.
	if !c.crossVault() {
		if err := c.repo.ValidatePath(c.OldPath); err != nil {
			return nil, err
		}
		if err := c.repo.ValidatePath(c.NewPath); err != nil {
			return nil, err
		}
		if err := c.repo.MoveNote(c.OldPath, c.NewPath); err != nil {
			return nil, application.Internal("move note", err)
		}
	}

	count, err := c.linker.UpdateAll(c.OldPath, c.NewPath, c.SourceVault, c.DestVault)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Renamed %s to %s, updated links in %d notes", c.OldPath, c.NewPath, count)
	if c.crossVault() {
		if c.NewPath == "" {
			msg = fmt.Sprintf("Rewrote links to %s for move to vault %s in %d notes", c.OldPath, c.DestVault, count)
		} else {
			msg = fmt.Sprintf("Recorded arrival of %s from vault %s, %d notes touched", c.NewPath, c.SourceVault, count)
		}
	}

	return &RenameResult{
		OldPath:      c.OldPath,
		NewPath:      c.NewPath,
		FilesChanged: count,
		Message:      msg,
	}, nil
}

// RenameOp converts the command into its batch representation.
func (c *RenameCommand) RenameOp() domain.RenameOp {
	return domain.RenameOp{
		OldPath:     c.OldPath,
		NewPath:     c.NewPath,
		SourceVault: c.SourceVault,
		DestVault:   c.DestVault,
	}
}
