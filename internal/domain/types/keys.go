package types

// KeyInfo describes a stored key pair without exposing key material.
type KeyInfo struct {
	Name        KeyName     `json:"name"`
	Fingerprint Fingerprint `json:"fingerprint"`
	Curve       string      `json:"curve"`
}
