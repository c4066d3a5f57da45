package config

import (
	"os"
	"time"

	"vaultkeeper/internal/adapters/linkcache"
)

const DefaultVaultPath = "~/Documents/vault"

// VaultPath returns the vault path from VAULTKEEPER_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("VAULTKEEPER_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

// IndexTTL returns the link index lifetime from VAULTKEEPER_INDEX_TTL
// (a Go duration string, e.g. "30s"), falling back to the cache default.
func IndexTTL() time.Duration {
	if env := os.Getenv("VAULTKEEPER_INDEX_TTL"); env != "" {
		if d, err := time.ParseDuration(env); err == nil && d > 0 {
			return d
		}
	}
	return linkcache.DefaultTTL
}
