package crypto

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"ecsign/internal/util/memzero"
)

const (
	pemPublicKey      = "PUBLIC KEY"
	pemPrivateKey     = "PRIVATE KEY"
	pemECPrivateKey   = "EC PRIVATE KEY"
	pemEncryptedPKCS8 = "ENCRYPTED PRIVATE KEY"
)

// MarshalPEM encodes k as SPKI in a "PUBLIC KEY" PEM block.
func (k *PublicKey) MarshalPEM() ([]byte, error) {
	pk, err := AsPublic(k)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKIXPublicKey(pk.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: der}), nil
}

// MarshalPEM encodes k as PKCS8 in a "PRIVATE KEY" PEM block. The returned
// slice holds secret material; callers should wipe it once done.
func (k *PrivateKey) MarshalPEM() ([]byte, error) {
	sk, err := AsPrivate(k)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKCS8PrivateKey(sk.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	defer memzero.Zero(der)
	return pem.EncodeToMemory(&pem.Block{Type: pemPrivateKey, Bytes: der}), nil
}

// ParsePublicKeyPEM decodes an SPKI "PUBLIC KEY" block holding a P-256 key.
func ParsePublicKeyPEM(data []byte) (*PublicKey, error) {
	block, err := decodePEM(data)
	if err != nil {
		return nil, err
	}
	switch block.Type {
	case pemPublicKey:
	case pemPrivateKey, pemECPrivateKey, pemEncryptedPKCS8:
		return nil, fmt.Errorf("%w: %w: PEM block %q is a private key", ErrInvalidKey, ErrKeyRoleMismatch, block.Type)
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrInvalidKey, block.Type)
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	pk, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an ECDSA key", ErrInvalidKey, parsed)
	}
	return NewPublicKey(pk)
}

// ParsePrivateKeyPEM decodes a PKCS8 "PRIVATE KEY" block, or a SEC 1
// "EC PRIVATE KEY" block, holding a P-256 key.
func ParsePrivateKeyPEM(data []byte) (*PrivateKey, error) {
	block, err := decodePEM(data)
	if err != nil {
		return nil, err
	}
	var parsed any
	switch block.Type {
	case pemPrivateKey:
		parsed, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case pemECPrivateKey:
		parsed, err = x509.ParseECPrivateKey(block.Bytes)
	case pemPublicKey:
		return nil, fmt.Errorf("%w: %w: PEM block %q is a public key", ErrInvalidKey, ErrKeyRoleMismatch, block.Type)
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrInvalidKey, block.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	sk, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an ECDSA key", ErrInvalidKey, parsed)
	}
	return NewPrivateKey(sk)
}

func decodePEM(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}
	return block, nil
}
