package types

// KeyName identifies a stored key pair.
type KeyName string

// String returns the string form of the key name.
func (n KeyName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
