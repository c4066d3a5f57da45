package domain

// TrashEntry is one manifest record for a directory moved to the trash.
type TrashEntry struct {
	ID           int64
	OriginalPath string // vault-relative path before trashing
	TrashPath    string // vault-relative path inside the trash folder
	TrashedAt    int64  // unix seconds
	Restored     bool
}
