package crypto

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the SPKI DER encoding with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(pub *PublicKey) (string, error) {
	k, err := AsPublic(pub)
	if err != nil {
		return "", err
	}
	der, err := x509.MarshalPKIXPublicKey(k.key)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:10]), nil
}
