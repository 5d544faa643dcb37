package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"ecsign/internal/crypto"
	"ecsign/internal/domain"
	"ecsign/internal/util/memzero"
)

const (
	publicKeyFile  = "public.pem"
	privateKeyFile = "private.pem.enc"

	dirMode  = 0o700
	fileMode = 0o600
)

var keyNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// writeKeyFile is swapped in tests to fail individual writes.
var writeKeyFile = writeFile

// KeyFileStore persists key pairs to disk.
type KeyFileStore struct {
	dir    string
	params ScryptParams
	mu     sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir using the default
// scrypt parameters.
func NewKeyFileStore(dir string) *KeyFileStore {
	return NewKeyFileStoreWithParams(dir, DefaultScryptParams())
}

// NewKeyFileStoreWithParams returns a KeyFileStore rooted at dir that seals
// private keys with params.
func NewKeyFileStoreWithParams(dir string, params ScryptParams) *KeyFileStore {
	return &KeyFileStore{dir: dir, params: params}
}

// ValidateKeyName reports whether name can be used to store a key pair.
func ValidateKeyName(name domain.KeyName) error {
	s := name.String()
	if !keyNamePattern.MatchString(s) || s == "." || s == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKeyName, s)
	}
	return nil
}

// SaveKeyPair writes pub in the clear and priv sealed under passphrase.
func (s *KeyFileStore) SaveKeyPair(
	name domain.KeyName,
	passphrase string,
	pub *crypto.PublicKey,
	priv *crypto.PrivateKey,
) error {
	if err := ValidateKeyName(name); err != nil {
		return err
	}
	sk, err := crypto.AsPrivate(priv)
	if err != nil {
		return err
	}
	pk, err := crypto.AsPublic(pub)
	if err != nil {
		return err
	}
	if !sk.Public().Equal(pk) {
		return fmt.Errorf("%w: public key does not match private key", crypto.ErrInvalidKey)
	}
	pubPEM, err := pk.MarshalPEM()
	if err != nil {
		return err
	}
	privPEM, err := sk.MarshalPEM()
	if err != nil {
		return err
	}
	defer memzero.Zero(privPEM)

	sealed, err := seal(passphrase, privPEM, []byte(name), s.params)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.keyDir(name)
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return err
	}
	if err := os.Mkdir(dir, dirMode); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrKeyExists, name)
		}
		return err
	}
	if err := writeKeyFile(filepath.Join(dir, privateKeyFile), sealed, fileMode); err != nil {
		_ = os.RemoveAll(dir)
		return err
	}
	if err := writeKeyFile(filepath.Join(dir, publicKeyFile), pubPEM, fileMode); err != nil {
		_ = os.RemoveAll(dir)
		return err
	}
	return nil
}

// LoadPublicKey reads the public key stored under name.
func (s *KeyFileStore) LoadPublicKey(name domain.KeyName) (*crypto.PublicKey, error) {
	if err := ValidateKeyName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.keyDir(name), publicKeyFile))
	if err != nil {
		return nil, err
	}
	return crypto.ParsePublicKeyPEM(b)
}

// LoadPrivateKey decrypts and returns the private key stored under name.
func (s *KeyFileStore) LoadPrivateKey(name domain.KeyName, passphrase string) (*crypto.PrivateKey, error) {
	if err := ValidateKeyName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	b, err := readFile(filepath.Join(s.keyDir(name), privateKeyFile))
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	pt, err := open(passphrase, b, []byte(name))
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(pt)
	return crypto.ParsePrivateKeyPEM(pt)
}

// ListKeys returns the names of all stored key pairs in lexical order.
func (s *KeyFileStore) ListKeys() ([]domain.KeyName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyName, 0, len(entries))
	for _, e := range entries {
		name := domain.KeyName(e.Name())
		if !e.IsDir() || ValidateKeyName(name) != nil {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.dir, e.Name(), publicKeyFile)); err != nil {
			continue
		}
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// DeleteKey removes the key pair stored under name.
func (s *KeyFileStore) DeleteKey(name domain.KeyName) error {
	if err := ValidateKeyName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.keyDir(name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return os.RemoveAll(dir)
}

func (s *KeyFileStore) keyDir(name domain.KeyName) string {
	return filepath.Join(s.dir, name.String())
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
