package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// CurveName is the NIST name of the only supported curve.
	CurveName = "P-256"
	// NamedCurve is the SEC/OpenSSL alias of CurveName.
	NamedCurve = "prime256v1"
)

// KeyRole tells a public key handle from a private one.
type KeyRole int

const (
	RolePublic KeyRole = iota + 1
	RolePrivate
)

// String returns "public" or "private".
func (r KeyRole) String() string {
	switch r {
	case RolePublic:
		return "public"
	case RolePrivate:
		return "private"
	default:
		return fmt.Sprintf("KeyRole(%d)", int(r))
	}
}

// Key is an opaque P-256 key handle.
type Key interface {
	Role() KeyRole
	Curve() string
}

// PublicKey is a P-256 public key handle.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// PrivateKey is a P-256 private key handle.
type PrivateKey struct {
	key *ecdsa.PrivateKey
	pub *PublicKey
}

func (*PublicKey) Role() KeyRole  { return RolePublic }
func (*PrivateKey) Role() KeyRole { return RolePrivate }

func (*PublicKey) Curve() string  { return CurveName }
func (*PrivateKey) Curve() string { return CurveName }

// Public returns the public half of k.
func (k *PrivateKey) Public() *PublicKey { return k.pub }

// ECDSA returns the underlying standard library key.
func (k *PublicKey) ECDSA() *ecdsa.PublicKey { return k.key }

// ECDSA returns the underlying standard library key.
func (k *PrivateKey) ECDSA() *ecdsa.PrivateKey { return k.key }

// Equal reports whether k and other hold the same point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil || k.key == nil || other.key == nil {
		return false
	}
	return k.key.Equal(other.key)
}

// GenerateKeyPair returns a new P-256 key pair drawn from crypto/rand.
func GenerateKeyPair() (*PublicKey, *PrivateKey, error) {
	return GenerateKeyPairFrom(rand.Reader)
}

// GenerateKeyPairFrom returns a new P-256 key pair using r as the entropy
// source. Any failure of r is reported as ErrRandomnessUnavailable.
func GenerateKeyPairFrom(r io.Reader) (*PublicKey, *PrivateKey, error) {
	if r == nil {
		return nil, nil, fmt.Errorf("%w: nil entropy source", ErrRandomnessUnavailable)
	}
	sk, err := ecdsa.GenerateKey(elliptic.P256(), r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrRandomnessUnavailable, err)
	}
	priv, err := NewPrivateKey(sk)
	if err != nil {
		return nil, nil, err
	}
	return priv.Public(), priv, nil
}

// NewPrivateKey wraps an existing ECDSA key. Keys on any curve other than
// P-256, or whose public point is not D*G, are rejected with ErrInvalidKey.
func NewPrivateKey(sk *ecdsa.PrivateKey) (*PrivateKey, error) {
	if sk == nil || sk.D == nil || sk.D.Sign() <= 0 {
		return nil, fmt.Errorf("%w: empty private key", ErrInvalidKey)
	}
	pub, err := NewPublicKey(&sk.PublicKey)
	if err != nil {
		return nil, err
	}
	derived, err := sk.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	point, err := sk.PublicKey.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if !derived.PublicKey().Equal(point) {
		return nil, fmt.Errorf("%w: public point does not match private scalar", ErrInvalidKey)
	}
	return &PrivateKey{key: sk, pub: pub}, nil
}

// NewPublicKey wraps an existing ECDSA public key. Keys on any curve other
// than P-256, or points not on the curve, are rejected with ErrInvalidKey.
func NewPublicKey(pk *ecdsa.PublicKey) (*PublicKey, error) {
	if pk == nil || pk.X == nil || pk.Y == nil {
		return nil, fmt.Errorf("%w: empty public key", ErrInvalidKey)
	}
	if pk.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: curve must be %s", ErrInvalidKey, CurveName)
	}
	if _, err := pk.ECDH(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return &PublicKey{key: pk}, nil
}

// AsPrivate returns k as a private key handle, or an error joining
// ErrInvalidKey and ErrKeyRoleMismatch when k is a public key.
func AsPrivate(k Key) (*PrivateKey, error) {
	switch v := k.(type) {
	case *PrivateKey:
		if v == nil || v.key == nil || v.pub == nil {
			return nil, fmt.Errorf("%w: nil private key", ErrInvalidKey)
		}
		return v, nil
	case *PublicKey:
		return nil, fmt.Errorf("%w: %w: want private key, got public", ErrInvalidKey, ErrKeyRoleMismatch)
	case nil:
		return nil, fmt.Errorf("%w: nil key", ErrInvalidKey)
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, k)
	}
}

// AsPublic returns k as a public key handle, or an error joining
// ErrInvalidKey and ErrKeyRoleMismatch when k is a private key.
func AsPublic(k Key) (*PublicKey, error) {
	switch v := k.(type) {
	case *PublicKey:
		if v == nil || v.key == nil {
			return nil, fmt.Errorf("%w: nil public key", ErrInvalidKey)
		}
		return v, nil
	case *PrivateKey:
		return nil, fmt.Errorf("%w: %w: want public key, got private", ErrInvalidKey, ErrKeyRoleMismatch)
	case nil:
		return nil, fmt.Errorf("%w: nil key", ErrInvalidKey)
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, k)
	}
}
