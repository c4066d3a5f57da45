package commands

import (
	"context"
	"fmt"
	"sort"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// BatchResult contains the result of a batch of rename/delete operations
type BatchResult struct {
	Stats   domain.BatchStats
	Message string
}

// BatchCommand applies a sequence of rename/delete operations in one
// pass: files are moved deepest-first, then every operation's link
// rewrite runs through the coordinator in the same order.
type BatchCommand struct {
	repo   ports.VaultRepository
	linker *application.Linker

	Ops []domain.RenameOp
}

// NewBatchCommand creates a new BatchCommand
func NewBatchCommand(repo ports.VaultRepository, linker *application.Linker, ops []domain.RenameOp) *BatchCommand {
	return &BatchCommand{
		repo:   repo,
		linker: linker,
		Ops:    ops,
	}
}

// Validate checks if the batch is well-formed
func (c *BatchCommand) Validate() error {
	if len(c.Ops) == 0 {
		return &application.ValidationError{
			Field:   "updates",
			Message: "at least one operation is required",
		}
	}
	for i, op := range c.Ops {
		if op.OldPath == "" && op.NewPath == "" {
			return &application.ValidationError{
				Field:   "updates",
				Message: fmt.Sprintf("operation %d has neither old nor new path", i+1),
			}
		}
	}
	return nil
}

// Execute runs the batch command
func (c *BatchCommand) Execute(ctx context.Context) (*BatchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Move files deepest-first so a child is relocated before a
	// shallower rename moves its ancestor directory out from under it.
	sorted := make([]domain.RenameOp, len(c.Ops))
	copy(sorted, c.Ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth() > sorted[j].Depth()
	})
	for _, op := range sorted {
		if op.IsDelete() || op.SourceVault != "" || op.DestVault != "" {
			continue
		}
		if err := c.repo.ValidatePath(op.OldPath); err != nil {
			return nil, err
		}
		if err := c.repo.ValidatePath(op.NewPath); err != nil {
			return nil, err
		}
		if !c.repo.NoteExists(op.NewPath) {
			if err := c.repo.MoveNote(op.OldPath, op.NewPath); err != nil {
				return nil, application.Internal("move note", err)
			}
		}
	}

	stats, err := c.linker.BatchUpdate(c.Ops)
	if err != nil {
		return nil, err
	}

	return &BatchResult{
		Stats: *stats,
		Message: fmt.Sprintf("Applied %d operations: %d notes changed, %d links counted",
			len(c.Ops), stats.TotalFiles, stats.TotalLinks),
	}, nil
}
