package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 digest of input
func Hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Fingerprint is a short Hash prefix for log fields that must not carry
// the original value
func Fingerprint(input string) string {
	if input == "" {
		return ""
	}
	return Hash(input)[:12]
}
