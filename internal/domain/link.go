package domain

import (
	"path"
	"strings"
)

// LinkOccurrence is one syntactic wikilink instance found in a note.
// Immutable once parsed.
type LinkOccurrence struct {
	RawText string // full link text, e.g. "[[Note#Heading|alias]]"
	Target  string // link target as written, e.g. "folder/Note"
	Alias   string // alias after "|", empty if none
	Heading string // heading fragment after "#", empty if none
	IsEmbed bool   // embed links start with "!"
	Line    int    // 1-based line number in the source note
	Context string // trimmed source line, for diagnostics
}

// SourceEntry groups the occurrences one note holds for a single target,
// in discovery order.
type SourceEntry struct {
	SourcePath  string // vault-relative path of the referencing note
	Occurrences []LinkOccurrence
}

// LinkIndex is the reverse map from normalized target name (basename
// without .md) to every note referencing it. A target appears as a key
// iff at least one note contains an occurrence resolving to it.
type LinkIndex struct {
	targets map[string][]*SourceEntry
}

// NewLinkIndex creates an empty index.
func NewLinkIndex() *LinkIndex {
	return &LinkIndex{targets: make(map[string][]*SourceEntry)}
}

// Add records an occurrence under the normalized target, extending the
// existing entry for sourcePath if one exists.
func (idx *LinkIndex) Add(target, sourcePath string, occ LinkOccurrence) {
	key := NormalizeTarget(target)
	if key == "" {
		return
	}
	for _, entry := range idx.targets[key] {
		if entry.SourcePath == sourcePath {
			entry.Occurrences = append(entry.Occurrences, occ)
			return
		}
	}
	idx.targets[key] = append(idx.targets[key], &SourceEntry{
		SourcePath:  sourcePath,
		Occurrences: []LinkOccurrence{occ},
	})
}

// Sources returns the entries referencing the given target name
// (normalized before lookup), or nil if nothing links to it.
func (idx *LinkIndex) Sources(target string) []*SourceEntry {
	return idx.targets[NormalizeTarget(target)]
}

// Targets returns all target keys in the index.
func (idx *LinkIndex) Targets() []string {
	keys := make([]string, 0, len(idx.targets))
	for k := range idx.targets {
		keys = append(keys, k)
	}
	return keys
}

// OccurrenceCount sums the occurrences recorded for a target across all
// source entries.
func (idx *LinkIndex) OccurrenceCount(target string) int {
	n := 0
	for _, entry := range idx.Sources(target) {
		n += len(entry.Occurrences)
	}
	return n
}

// Len returns the number of distinct targets in the index.
func (idx *LinkIndex) Len() int {
	return len(idx.targets)
}

// Document is one note's text paired with its vault-relative path.
type Document struct {
	Path string
	Text string
}

// BuildIndex parses every document and groups occurrences by normalized
// target. Pure; document identity is the vault-relative path.
func BuildIndex(docs []Document) *LinkIndex {
	idx := NewLinkIndex()
	for _, doc := range docs {
		for _, occ := range ParseLinks(doc.Text) {
			idx.Add(occ.Target, doc.Path, occ)
		}
	}
	return idx
}

// RenameOp describes one mutating vault operation. An empty NewPath
// signals deletion, not a move.
type RenameOp struct {
	OldPath     string
	NewPath     string
	SourceVault string
	DestVault   string
}

// IsDelete reports whether the operation removes the target.
func (op RenameOp) IsDelete() bool {
	return op.NewPath == ""
}

// Depth returns the number of path segments in OldPath (NewPath when
// OldPath is empty). Batch processing orders deeper paths first.
func (op RenameOp) Depth() int {
	p := op.OldPath
	if p == "" {
		p = op.NewPath
	}
	if p == "" {
		return 0
	}
	return strings.Count(p, "/") + 1
}

// NormalizeTarget maps a link target to its index key: the final path
// segment with any .md suffix stripped, so "folder/Note" and "Note" both
// index under "Note".
func NormalizeTarget(target string) string {
	target = strings.TrimSpace(target)
	if strings.HasSuffix(strings.ToLower(target), ".md") {
		target = target[:len(target)-3]
	}
	target = strings.TrimSuffix(target, "/")
	if target == "" {
		return ""
	}
	return path.Base(target)
}

// TargetBase returns the basename (without .md) of a vault-relative note
// path, i.e. the name wikilinks use to address it.
func TargetBase(notePath string) string {
	return NormalizeTarget(notePath)
}
