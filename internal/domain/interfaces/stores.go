package interfaces

import (
	"ecsign/internal/crypto"
	domaintypes "ecsign/internal/domain/types"
)

// KeyStore persists P-256 key pairs. Private keys are stored sealed under a
// passphrase; public keys are stored in the clear.
type KeyStore interface {
	SaveKeyPair(
		name domaintypes.KeyName,
		passphrase string,
		pub *crypto.PublicKey,
		priv *crypto.PrivateKey,
	) error
	LoadPublicKey(name domaintypes.KeyName) (*crypto.PublicKey, error)
	LoadPrivateKey(name domaintypes.KeyName, passphrase string) (*crypto.PrivateKey, error)
	ListKeys() ([]domaintypes.KeyName, error)
	DeleteKey(name domaintypes.KeyName) error
}
