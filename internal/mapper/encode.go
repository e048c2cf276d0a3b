package mapper

import (
	"crypto/sha1"
	"encoding/base64"
)

// salt is fixed: changing it would re-key every published id and link.
const salt = "ks734s_sdgOc4£b2"

// Encode hashes a raw CHIPS identifier into the URL-safe token used for
// public ids and links. Deterministic, so retried messages address the same
// downstream resource. Callers must not pass a missing id; absent source ids
// leave the destination field unset instead.
func Encode(raw string) string {
	sum := sha1.Sum([]byte(raw + salt))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
