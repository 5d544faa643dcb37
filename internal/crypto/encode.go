package crypto

import (
	"encoding/hex"
	"fmt"
)

// Hex returns the lowercase hex encoding of b.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// decodeSignatureHex decodes a hex signature, reporting failures as
// ErrMalformedSignature.
func decodeSignatureHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSignature, err)
	}
	return b, nil
}
