package code

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Alphabet used for attendance codes. Uppercase only so codes survive
// being read aloud or typed on a phone keyboard.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the standard attendance code length.
const DefaultLength = 6

// Generate returns a random alphanumeric code of the given length.
// Each random byte is reduced modulo the alphabet size; the slight bias
// is acceptable for a short human-copyable code.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out), nil
}

// Digest returns the hex-encoded SHA-256 digest of a raw code.
// Only digests are ever stored or compared; the raw code is disclosed
// exactly once, to the lecturer who opened the session.
func Digest(rawCode string) string {
	sum := sha256.Sum256([]byte(rawCode))
	return hex.EncodeToString(sum[:])
}
