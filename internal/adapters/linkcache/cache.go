// Package linkcache holds the process-wide backlink index cache: the last
// built domain.LinkIndex, its build time, and the vault it was built for.
// The cache is rebuilt wholesale — never patched — on forced refresh or
// after the TTL elapses, and the new index is swapped in only once the
// build completed, so readers never observe a partial index.
package linkcache

import (
	"log"
	"sync"
	"time"

	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// DefaultTTL is how long a built index stays fresh.
const DefaultTTL = 5 * time.Minute

// Cache implements ports.LinkIndexProvider over a VaultRepository.
type Cache struct {
	repo ports.VaultRepository
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	idx     *domain.LinkIndex
	builtAt time.Time
}

var _ ports.LinkIndexProvider = (*Cache)(nil)

// New creates an empty cache. A non-positive ttl selects DefaultTTL.
func New(repo ports.VaultRepository, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{repo: repo, ttl: ttl, now: time.Now}
}

// Get returns the cached index, rebuilding synchronously when force is
// set, nothing is cached yet, or the TTL has elapsed.
func (c *Cache) Get(force bool) (*domain.LinkIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.idx != nil && c.now().Sub(c.builtAt) < c.ttl {
		return c.idx, nil
	}

	idx, err := c.rebuild()
	if err != nil {
		return nil, err
	}
	c.idx = idx
	c.builtAt = c.now()
	return idx, nil
}

// Invalidate drops the cached index.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.idx = nil
	c.builtAt = time.Time{}
}

// rebuild reads every note and builds a fresh index. An unreadable note
// is logged and left out; the remaining notes still yield a usable
// (partial) index. Enumeration failure aborts the rebuild.
func (c *Cache) rebuild() (*domain.LinkIndex, error) {
	paths, err := c.repo.ListMarkdownFiles()
	if err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(paths))
	for _, p := range paths {
		text, err := c.repo.ReadNote(p)
		if err != nil {
			log.Printf("vaultkeeper: index skipping %s: %v", p, err)
			continue
		}
		docs = append(docs, domain.Document{Path: p, Text: text})
	}
	return domain.BuildIndex(docs), nil
}
