package store

import "errors"

var (
	// ErrKeyNotFound is returned when no key pair is stored under a name.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyExists is returned when saving over an existing key pair.
	ErrKeyExists = errors.New("key already exists")

	// ErrInvalidKeyName is returned for names that cannot be used as a
	// directory name.
	ErrInvalidKeyName = errors.New("invalid key name")

	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed private key has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted private key")
)
