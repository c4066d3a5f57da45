package commands

import (
	"context"
	"fmt"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// BacklinksResult contains the notes referencing a target
type BacklinksResult struct {
	Target  string
	Entries []*domain.SourceEntry
	Total   int
	Message string
}

// BacklinksCommand queries the index for every note referencing a target.
type BacklinksCommand struct {
	index ports.LinkIndexProvider

	Target string
	Force  bool // force an index rebuild before querying
}

// NewBacklinksCommand creates a new BacklinksCommand
func NewBacklinksCommand(index ports.LinkIndexProvider, target string) *BacklinksCommand {
	return &BacklinksCommand{
		index:  index,
		Target: target,
	}
}

// Validate checks if the query is valid
func (c *BacklinksCommand) Validate() error {
	return application.ValidateRequired("target", c.Target)
}

// Execute runs the backlinks query
func (c *BacklinksCommand) Execute(ctx context.Context) (*BacklinksResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	idx, err := c.index.Get(c.Force)
	if err != nil {
		return nil, application.Internal("refresh index", err)
	}

	entries := idx.Sources(c.Target)
	total := 0
	for _, e := range entries {
		total += len(e.Occurrences)
	}

	return &BacklinksResult{
		Target:  domain.NormalizeTarget(c.Target),
		Entries: entries,
		Total:   total,
		Message: fmt.Sprintf("%d occurrences in %d notes link to %s", total, len(entries), domain.NormalizeTarget(c.Target)),
	}, nil
}
