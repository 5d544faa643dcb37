// Package keys manages creation, storage and use of named P-256 key pairs.
//
// It enforces passphrase policy, generates key pairs through internal/crypto,
// persists them via the domain.KeyStore, and signs or verifies data with a
// stored key. Operations log to the zerolog logger carried on the context;
// key material is never logged.
package keys
