// Package store provides file-based persistence for ecsign key pairs.
//
// KeyFileStore implements domain.KeyStore. Each key pair lives in its own
// directory under the store root:
//
//	<root>/<name>/public.pem        SPKI PEM, stored in the clear
//	<root>/<name>/private.pem.enc   PKCS8 PEM sealed under a passphrase
//
// The sealed file is a JSON envelope carrying the scrypt parameters, salt and
// ChaCha20-Poly1305 ciphertext. All methods are concurrency-safe via internal
// locking, and every write goes through a temp file and rename.
package store
