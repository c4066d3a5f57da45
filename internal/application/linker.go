package application

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// Linker coordinates link rewriting across the whole vault for rename,
// delete, and cross-vault move operations, and runs the link integrity
// check. The index cache is injected so tests can substitute their own.
type Linker struct {
	repo  ports.VaultRepository
	index ports.LinkIndexProvider
}

// NewLinker creates a Linker over the given collaborators.
func NewLinker(repo ports.VaultRepository, index ports.LinkIndexProvider) *Linker {
	return &Linker{repo: repo, index: index}
}

// UpdateLinksInFile rewrites the links of a single note and reports
// whether its text changed. The note is written back only on change.
func (l *Linker) UpdateLinksInFile(relPath, oldPath, newPath string, opts domain.RewriteOptions) (bool, error) {
	text, err := l.repo.ReadNote(relPath)
	if err != nil {
		return false, Internal("read "+relPath, err)
	}
	updated := domain.RewriteLinks(text, oldPath, newPath, opts)
	if updated == text {
		return false, nil
	}
	if err := l.repo.WriteNote(relPath, updated); err != nil {
		return false, Internal("write "+relPath, err)
	}
	return true, nil
}

// UpdateAll rewrites links in every note of the vault for one rename,
// delete, or cross-vault move, and returns the number of notes changed.
//
// Validation and enumeration failures are fatal; a read/write failure on
// one note is logged and that note skipped, so a single locked or
// unreadable file cannot abort the whole operation.
func (l *Linker) UpdateAll(oldPath, newPath, sourceVault, destVault string) (int, error) {
	candidate := oldPath
	if candidate == "" {
		candidate = newPath
	}
	if candidate == "" {
		candidate = l.repo.Root()
	}
	if err := l.repo.ValidatePath(candidate); err != nil {
		return 0, err
	}

	docs, err := l.repo.ListMarkdownFiles()
	if err != nil {
		return 0, Internal("list documents", err)
	}

	movedToOther := oldPath != "" && newPath == "" && sourceVault != "" && destVault != ""
	movedFromOther := oldPath == "" && newPath != "" && sourceVault != "" && destVault != ""

	// Mutations invalidate any cached view.
	if _, err := l.index.Get(true); err != nil {
		return 0, Internal("refresh index", err)
	}

	opts := domain.RewriteOptions{DestVault: destVault, CrossVault: movedToOther}
	destRel := normalizeRel(newPath)

	count := 0
	for _, doc := range docs {
		// Skip the move's own destination so the just-created note is
		// not rewritten against itself.
		if destRel != "" && doc == destRel {
			continue
		}
		changed, err := l.UpdateLinksInFile(doc, oldPath, newPath, opts)
		if err != nil {
			log.Printf("vaultkeeper: skipping %s: %v", doc, err)
			continue
		}
		if changed {
			count++
		}
	}

	if movedFromOther {
		if changed := l.appendArrivalNote(destRel, sourceVault); changed {
			count++
		}
	}

	return count, nil
}

// appendArrivalNote records the originating vault on a note that just
// arrived from another vault.
func (l *Linker) appendArrivalNote(relPath, sourceVault string) bool {
	text, err := l.repo.ReadNote(relPath)
	if err != nil {
		log.Printf("vaultkeeper: skipping arrival note for %s: %v", relPath, err)
		return false
	}
	note := fmt.Sprintf("\n\n> [!note] Moved here from vault %q\n", sourceVault)
	if strings.HasSuffix(text, note) {
		return false
	}
	if err := l.repo.WriteNote(relPath, text+note); err != nil {
		log.Printf("vaultkeeper: skipping arrival note for %s: %v", relPath, err)
		return false
	}
	return true
}

// BatchUpdate applies a sequence of rename/delete operations, deepest
// paths first, so a child rename is finalized before a shallower rename
// relocates its ancestors. Returns files changed and the occurrence count
// of each step's original target as it stood before that step's rewrite
// (see domain.BatchStats).
func (l *Linker) BatchUpdate(ops []domain.RenameOp) (*domain.BatchStats, error) {
	sorted := make([]domain.RenameOp, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth() > sorted[j].Depth()
	})

	if _, err := l.index.Get(true); err != nil {
		return nil, Internal("refresh index", err)
	}

	stats := &domain.BatchStats{}
	for _, op := range sorted {
		n, err := l.UpdateAll(op.OldPath, op.NewPath, op.SourceVault, op.DestVault)
		if err != nil {
			return nil, err
		}
		stats.TotalFiles += n

		idx, err := l.index.Get(false)
		if err != nil {
			return nil, Internal("query index", err)
		}
		stats.TotalLinks += idx.OccurrenceCount(domain.TargetBase(op.OldPath))
	}
	return stats, nil
}

// brokenLinkCallout is the warning block Validate inserts after each
// broken occurrence.
func brokenLinkCallout(target string) string {
	return fmt.Sprintf("\n> [!warning] Broken link: %q does not exist in this vault\n", target)
}

// Validate finds links whose target note is missing from the vault root
// and annotates each occurrence with a warning callout, leaving the
// original link text in place. Per-note read/write failures are logged
// and skipped.
func (l *Linker) Validate() (*domain.IntegrityReport, error) {
	idx, err := l.index.Get(true)
	if err != nil {
		return nil, Internal("refresh index", err)
	}

	report := &domain.IntegrityReport{}
	for _, target := range idx.Targets() {
		// Root-level existence check only; no recursive search.
		if l.repo.NoteExists(target + ".md") {
			continue
		}
		for _, entry := range idx.Sources(target) {
			text, err := l.repo.ReadNote(entry.SourcePath)
			if err != nil {
				log.Printf("vaultkeeper: skipping %s: %v", entry.SourcePath, err)
				continue
			}
			modified := text
			annotated := make(map[string]bool)
			for _, occ := range entry.Occurrences {
				report.BrokenLinks++
				report.RepairedLinks++
				if annotated[occ.RawText] {
					continue
				}
				annotated[occ.RawText] = true
				modified = insertAfterOccurrences(modified, occ.RawText, brokenLinkCallout(target))
			}
			if modified == text {
				continue
			}
			if err := l.repo.WriteNote(entry.SourcePath, modified); err != nil {
				log.Printf("vaultkeeper: skipping %s: %v", entry.SourcePath, err)
				continue
			}
			report.AffectedFiles++
		}
	}
	return report, nil
}

// insertAfterOccurrences inserts suffix after every instance of raw in
// text. Plain-link raws are not matched inside embed spans (a preceding
// "!" belongs to a distinct embed occurrence with its own raw text).
func insertAfterOccurrences(text, raw, suffix string) string {
	if raw == "" {
		return text
	}
	var out strings.Builder
	for {
		i := strings.Index(text, raw)
		if i < 0 {
			out.WriteString(text)
			return out.String()
		}
		if !strings.HasPrefix(raw, "!") && i > 0 && text[i-1] == '!' {
			out.WriteString(text[:i+len(raw)])
			text = text[i+len(raw):]
			continue
		}
		out.WriteString(text[:i+len(raw)])
		out.WriteString(suffix)
		text = text[i+len(raw):]
	}
}

// normalizeRel cleans a vault-relative path: forward slashes, no leading
// "./".
func normalizeRel(p string) string {
	if p == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "./")
}
