package config

import "time"

// Default cache settings. The 7-day freshness window is part of the
// profile contract: a stored profile with a future expiry is returned
// verbatim; past expiry triggers a full synchronous rebuild.
const (
	DefaultProfileTTL       = 7 * 24 * time.Hour
	DefaultProfileCacheSize = 4096
)
