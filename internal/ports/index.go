package ports

import "vaultkeeper/internal/domain"

// LinkIndexProvider hands out the current backlink index. Implementations
// cache the last build and rebuild when forced or when the cache ages out.
// Callers during a rebuild never observe a half-built index: the new index
// is swapped in only after the build completes.
type LinkIndexProvider interface {
	// Get returns the cached index, rebuilding first when force is set or
	// the cache is stale.
	Get(force bool) (*domain.LinkIndex, error)

	// Invalidate drops the cached index so the next Get rebuilds.
	Invalidate()
}
