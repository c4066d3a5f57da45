package commands

import (
	"strings"
	"testing"
)

func TestRenameCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		oldPath     string
		newPath     string
		sourceVault string
		destVault   string
		wantErr     bool
		errMsg      string
	}{
		{
			name:    "valid in-vault rename",
			oldPath: "notes/old.md",
			newPath: "notes/new.md",
			wantErr: false,
		},
		{
			name:    "both paths empty",
			wantErr: true,
			errMsg:  "old path or new path is required",
		},
		{
			name:        "source vault without dest vault",
			oldPath:     "notes/old.md",
			sourceVault: "work",
			wantErr:     true,
			errMsg:      "must be set together",
		},
		{
			name:      "dest vault without source vault",
			oldPath:   "notes/old.md",
			destVault: "archive",
			wantErr:   true,
			errMsg:    "must be set together",
		},
		{
			name:    "in-vault rename missing new path",
			oldPath: "notes/old.md",
			wantErr: true,
			errMsg:  "new path is required",
		},
		{
			name:        "valid outgoing cross-vault move",
			oldPath:     "notes/old.md",
			sourceVault: "work",
			destVault:   "archive",
			wantErr:     false,
		},
		{
			name:        "valid incoming cross-vault move",
			newPath:     "notes/new.md",
			sourceVault: "work",
			destVault:   "archive",
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameCommand{
				OldPath:     tt.oldPath,
				NewPath:     tt.newPath,
				SourceVault: tt.sourceVault,
				DestVault:   tt.destVault,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestRenameCommand_RenameOp(t *testing.T) {
	cmd := &RenameCommand{
		OldPath:     "a/b.md",
		NewPath:     "c/d.md",
		SourceVault: "work",
		DestVault:   "archive",
	}
	op := cmd.RenameOp()
	if op.OldPath != "a/b.md" || op.NewPath != "c/d.md" {
		t.Errorf("op paths = %q, %q", op.OldPath, op.NewPath)
	}
	if op.SourceVault != "work" || op.DestVault != "archive" {
		t.Errorf("op vaults = %q, %q", op.SourceVault, op.DestVault)
	}
}

// contains checks if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
