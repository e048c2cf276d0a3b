package mapper

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/google/uuid"
)

// EtagGenerator produces a fresh etag for each mapped record. Injectable so
// tests can pin the value.
type EtagGenerator func() string

// NewEtag is the production generator: the hex SHA-1 of a random UUID, so
// every transformation yields a distinct opaque tag.
func NewEtag() string {
	sum := sha1.Sum([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])
}
