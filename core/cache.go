package core

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ResponseCache is the external read-through/write-through cache
// collaborator. The engine queries it by request fingerprint before running
// a pipeline and stores the final text after a successful run.
type ResponseCache interface {
	// Get returns the cached value for namespace/key and whether it exists.
	Get(namespace, key string) (string, bool)
	// Set stores value under namespace/key with the given time to live.
	// Implementations choose a default for non-positive ttl values.
	Set(namespace, key, value string, ttl time.Duration)
}

// Fingerprint returns the deterministic cache key for request text.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
