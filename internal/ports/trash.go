package ports

import "vaultkeeper/internal/domain"

// TrashStore persists the trash manifest: which directories were moved to
// the trash, from where, and whether they were restored. The manifest
// outlives the process so restore works across runs.
type TrashStore interface {
	Open(vaultPath string) error
	Close() error

	Record(entry *domain.TrashEntry) (int64, error)
	List(includeRestored bool) ([]domain.TrashEntry, error)
	Get(id int64) (*domain.TrashEntry, error)
	MarkRestored(id int64) error
}
