package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// DigestSize is the length in bytes of a SHA-256 digest.
const DigestSize = sha256.Size

// Digest returns the SHA-256 hash of data as 64 lowercase hex characters.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DigestString hashes the UTF-8 bytes of s.
func DigestString(s string) string {
	return Digest([]byte(s))
}

// DigestValue hashes a string, byte slice or io.Reader. Any other type, or a
// reader that fails, yields ErrInvalidInput.
func DigestValue(v any) (string, error) {
	switch in := v.(type) {
	case string:
		return DigestString(in), nil
	case []byte:
		return Digest(in), nil
	case io.Reader:
		h := sha256.New()
		if _, err := io.Copy(h, in); err != nil {
			return "", fmt.Errorf("%w: read: %w", ErrInvalidInput, err)
		}
		return hex.EncodeToString(h.Sum(nil)), nil
	default:
		return "", fmt.Errorf("%w: cannot digest %T", ErrInvalidInput, v)
	}
}
