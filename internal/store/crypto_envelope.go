package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ecsign/internal/util/memzero"
)

const (
	// The current supported version of the sealed key format stored on disk.
	keystoreFormatVersion = 1

	saltBytes = 16
)

// ScryptParams tunes the key derivation used to seal private keys.
type ScryptParams struct {
	N int `mapstructure:"n"`
	R int `mapstructure:"r"`
	P int `mapstructure:"p"`
}

// DefaultScryptParams returns the parameters used when none are configured.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// Validate rejects parameters scrypt would refuse.
func (p ScryptParams) Validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("scrypt N must be a power of two greater than 1, got %d", p.N)
	}
	if p.R <= 0 || p.P <= 0 || uint64(p.R)*uint64(p.P) >= 1<<30 {
		return fmt.Errorf("scrypt r and p out of range: r=%d p=%d", p.R, p.P)
	}
	return nil
}

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw into a JSON envelope.
// The ciphertext is bound to ad, so it cannot be replayed under another name.
func seal(passphrase string, raw, ad []byte, params ScryptParams) ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is single use
	ct := aead.Seal(nil, nonce[:], raw, additionalData(salt, ad))

	return json.Marshal(envelope{
		V:      keystoreFormatVersion,
		Salt:   salt,
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// open decrypts a JSON envelope produced by seal.
func open(passphrase string, b, ad []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}
	if env.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", env.V)
	}
	params := ScryptParams{N: env.N, R: env.R, P: env.P}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, additionalData(env.Salt, ad))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func additionalData(salt, ad []byte) []byte {
	out := make([]byte, 0, len(salt)+len(ad))
	out = append(out, salt...)
	return append(out, ad...)
}
