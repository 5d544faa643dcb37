package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// MaxSignatureSize bounds a DER-encoded P-256 ECDSA signature.
const MaxSignatureSize = 72

// Sign hashes data with SHA-256 and signs the digest with priv. The result
// is the hex encoding of an ASN.1 DER signature. Each call uses a fresh
// nonce, so repeated signatures over the same data differ.
func Sign(priv Key, data []byte) (string, error) {
	return SignFrom(rand.Reader, priv, data)
}

// SignString signs the UTF-8 bytes of s.
func SignString(priv Key, s string) (string, error) {
	return Sign(priv, []byte(s))
}

// SignFrom is Sign with an explicit entropy source.
func SignFrom(r io.Reader, priv Key, data []byte) (string, error) {
	k, err := AsPrivate(priv)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", fmt.Errorf("%w: nil entropy source", ErrRandomnessUnavailable)
	}
	digest := sha256.Sum256(data)
	sig, err := ecdsa.SignASN1(r, k.key, digest[:])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomnessUnavailable, err)
	}
	return Hex(sig), nil
}

// Verify reports whether sigHex is a valid signature over the SHA-256 digest
// of data for pub. A well-formed signature that does not match yields false
// and a nil error; only undecodable signatures and wrong key handles are
// errors.
func Verify(pub Key, data []byte, sigHex string) (bool, error) {
	k, err := AsPublic(pub)
	if err != nil {
		return false, err
	}
	sig, err := decodeSignatureHex(sigHex)
	if err != nil {
		return false, err
	}
	if err := checkSignatureDER(sig); err != nil {
		return false, err
	}
	digest := sha256.Sum256(data)
	return ecdsa.VerifyASN1(k.key, digest[:], sig), nil
}

// VerifyString verifies a signature over the UTF-8 bytes of s.
func VerifyString(pub Key, s, sigHex string) (bool, error) {
	return Verify(pub, []byte(s), sigHex)
}

// checkSignatureDER accepts exactly SEQUENCE { INTEGER r, INTEGER s } with no
// trailing bytes.
func checkSignatureDER(sig []byte) error {
	if len(sig) == 0 || len(sig) > MaxSignatureSize {
		return fmt.Errorf("%w: length %d", ErrMalformedSignature, len(sig))
	}
	var (
		inner cryptobyte.String
		r, s  big.Int
	)
	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return fmt.Errorf("%w: not an ASN.1 ECDSA signature", ErrMalformedSignature)
	}
	return nil
}
