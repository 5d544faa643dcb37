package app

import (
	"path/filepath"

	"ecsign/internal/domain"
	keysvc "ecsign/internal/services/keys"
	"ecsign/internal/store"
)

// keysDirName keeps key pairs apart from config.yaml under the home directory.
const keysDirName = "keys"

// Wire bundles the store and services used by the CLI.
type Wire struct {
	Store domain.KeyStore
	Keys  domain.KeyService
}

// KeysDir returns the directory holding key pairs for home.
func KeysDir(home string) string { return filepath.Join(home, keysDirName) }

// NewWire constructs the dependency graph from cfg. It does not touch the
// filesystem; the store creates its directory on the first save.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keyStore := store.NewKeyFileStoreWithParams(KeysDir(cfg.Home), cfg.Scrypt)

	return &Wire{
		Store: keyStore,
		Keys:  keysvc.New(keyStore),
	}, nil
}
