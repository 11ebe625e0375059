package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashApplicantKey returns a filesystem-safe identifier for an applicant ID.
func HashApplicantKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
