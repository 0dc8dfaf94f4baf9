package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken generates a SHA256 hash of a refresh token. Only the hash
// is ever persisted; the raw token lives in the client's cookie.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token with its stored SHA256
// hash. This is the exact-equality check that detects replay of a stale token
// after a rotation.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return storedHash != "" && HashRefreshToken(token) == storedHash
}
