// Package crypto exposes the minimal primitives used by ecsign.
//
// Contents
//
//   - SHA-256 digests rendered as lowercase hex (Digest, DigestString,
//     DigestValue)
//   - P-256 key-pair generation with role-tagged handles (GenerateKeyPair,
//     AsPrivate, AsPublic)
//   - ECDSA signing and verification over the SHA-256 digest of the data,
//     signatures carried as hex-encoded ASN.1 DER (Sign, Verify)
//   - SPKI / PKCS8 PEM export and import (MarshalPEM, ParsePublicKeyPEM,
//     ParsePrivateKeyPEM)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Every operation delegates to the standard library (crypto/ecdsa,
// crypto/sha256, crypto/x509). Key handles are immutable once created and may
// be shared between goroutines. Failures are reported with the sentinel errors
// in errors.go and must be checked with errors.Is.
package crypto
