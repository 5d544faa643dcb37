package keys

import (
	"context"
	"fmt"
	"unicode"

	"github.com/rs/zerolog"

	"ecsign/internal/crypto"
	"ecsign/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages named key pairs using a backing store.
type Service struct {
	store domain.KeyStore
}

// New returns a key service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s} }

// Generate creates a new P-256 key pair, saves it with the private half sealed
// under passphrase, and returns its description.
func (s *Service) Generate(
	ctx context.Context,
	name domain.KeyName,
	passphrase string,
) (domain.KeyInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.KeyInfo{}, err
	}
	if !isSecurePassphrase(passphrase) {
		return domain.KeyInfo{}, ErrWeakPassphrase
	}

	pub, priv, err := crypto.GenerateKeyPair()
	if err != nil {
		return domain.KeyInfo{}, err
	}
	if err := s.store.SaveKeyPair(name, passphrase, pub, priv); err != nil {
		return domain.KeyInfo{}, err
	}
	info, err := describe(name, pub)
	if err != nil {
		return domain.KeyInfo{}, err
	}

	logger(ctx).Info().
		Str("key", name.String()).
		Str("fingerprint", info.Fingerprint.String()).
		Msg("generated key pair")
	return info, nil
}

// Info returns the description of the key stored under name.
func (s *Service) Info(ctx context.Context, name domain.KeyName) (domain.KeyInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.KeyInfo{}, err
	}
	pub, err := s.store.LoadPublicKey(name)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	return describe(name, pub)
}

// List describes every stored key. Keys that fail to load are skipped with a
// warning.
func (s *Service) List(ctx context.Context) ([]domain.KeyInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := s.store.ListKeys()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyInfo, 0, len(names))
	for _, name := range names {
		info, err := s.Info(ctx, name)
		if err != nil {
			logger(ctx).Warn().Err(err).Str("key", name.String()).Msg("skipping unreadable key")
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

// Delete removes the key stored under name.
func (s *Service) Delete(ctx context.Context, name domain.KeyName) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.DeleteKey(name); err != nil {
		return err
	}
	logger(ctx).Info().Str("key", name.String()).Msg("deleted key pair")
	return nil
}

// Sign signs data with the private key stored under name and returns the
// hex-encoded signature.
func (s *Service) Sign(
	ctx context.Context,
	name domain.KeyName,
	passphrase string,
	data []byte,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	priv, err := s.store.LoadPrivateKey(name, passphrase)
	if err != nil {
		return "", err
	}
	sig, err := crypto.Sign(priv, data)
	if err != nil {
		return "", err
	}
	logger(ctx).Debug().
		Str("key", name.String()).
		Str("digest", crypto.Digest(data)).
		Msg("signed data")
	return sig, nil
}

// Verify checks signature over data against the public key stored under name.
// A mismatch is reported as false with a nil error.
func (s *Service) Verify(
	ctx context.Context,
	name domain.KeyName,
	data []byte,
	signature string,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	pub, err := s.store.LoadPublicKey(name)
	if err != nil {
		return false, err
	}
	ok, err := crypto.Verify(pub, data, signature)
	if err != nil {
		return false, err
	}
	logger(ctx).Debug().
		Str("key", name.String()).
		Str("digest", crypto.Digest(data)).
		Bool("valid", ok).
		Msg("verified signature")
	return ok, nil
}

// ExportPublic returns the SPKI PEM encoding of the key stored under name.
func (s *Service) ExportPublic(ctx context.Context, name domain.KeyName) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pub, err := s.store.LoadPublicKey(name)
	if err != nil {
		return nil, err
	}
	return pub.MarshalPEM()
}

// ExportPrivate returns the PKCS8 PEM encoding of the private key stored under
// name. The caller owns the returned secret.
func (s *Service) ExportPrivate(
	ctx context.Context,
	name domain.KeyName,
	passphrase string,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	priv, err := s.store.LoadPrivateKey(name, passphrase)
	if err != nil {
		return nil, err
	}
	logger(ctx).Warn().Str("key", name.String()).Msg("exporting private key")
	return priv.MarshalPEM()
}

func describe(name domain.KeyName, pub *crypto.PublicKey) (domain.KeyInfo, error) {
	fp, err := crypto.Fingerprint(pub)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	return domain.KeyInfo{
		Name:        name,
		Fingerprint: domain.Fingerprint(fp),
		Curve:       pub.Curve(),
	}, nil
}

func logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("component", "keys").Logger()
	return &l
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
