package crypto

import "errors"

var (
	// ErrInvalidInput is returned when a value cannot be turned into bytes.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidKey is returned for nil, malformed or non-P-256 key handles,
	// and for a key presented in the wrong role.
	ErrInvalidKey = errors.New("invalid key")

	// ErrKeyRoleMismatch is returned when a public key is used where a private
	// key is required, or the reverse. It is always joined with ErrInvalidKey.
	ErrKeyRoleMismatch = errors.New("key role mismatch")

	// ErrRandomnessUnavailable is returned when the entropy source fails
	// during key generation or signing.
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")

	// ErrMalformedSignature is returned when a signature is not hex or not a
	// DER-encoded ECDSA signature.
	ErrMalformedSignature = errors.New("malformed signature")
)
