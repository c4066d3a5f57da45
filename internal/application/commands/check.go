package commands

import (
	"context"
	"fmt"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/domain"
)

// CheckResult contains the result of a link integrity check
type CheckResult struct {
	Report  domain.IntegrityReport
	Message string
}

// CheckCommand runs the vault-wide link integrity check, annotating
// every occurrence whose target note is missing.
type CheckCommand struct {
	linker *application.Linker
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(linker *application.Linker) *CheckCommand {
	return &CheckCommand{linker: linker}
}

// Execute runs the check command
func (c *CheckCommand) Execute(ctx context.Context) (*CheckResult, error) {
	report, err := c.linker.Validate()
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Report: *report,
		Message: fmt.Sprintf("%d broken links annotated across %d notes",
			report.BrokenLinks, report.AffectedFiles),
	}, nil
}
