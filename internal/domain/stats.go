package domain

// BatchStats holds aggregate statistics from a batch of rename/delete
// operations.
//
// TotalLinks counts occurrences of each step's original target as recorded
// by the index refreshed at the start of that step — i.e. the links that
// existed immediately before the step's rewrite ran, not after.
type BatchStats struct {
	TotalFiles int
	TotalLinks int
}

// IntegrityReport holds the outcome of a vault-wide link integrity check.
type IntegrityReport struct {
	BrokenLinks   int // occurrences whose target note is missing
	RepairedLinks int // occurrences annotated with a warning callout
	AffectedFiles int // notes rewritten with at least one annotation
}
