package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// shortHashLen is how many hex characters Short keeps for display.
const shortHashLen = 12

// Hash computes the SHA-256 hex digest of data. Instance hashes feed both
// cache keys and the instance_hash field reported to clients.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Short abbreviates a hex hash for log and display output.
func Short(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}
