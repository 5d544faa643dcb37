package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsign/internal/crypto"
	"ecsign/internal/domain"
	"ecsign/internal/store"
)

// fastParams keeps scrypt cheap in tests.
var fastParams = store.ScryptParams{N: 1 << 4, R: 8, P: 1}

func newStore(t *testing.T) (*store.KeyFileStore, string) {
	t.Helper()
	home := t.TempDir()
	return store.NewKeyFileStoreWithParams(home, fastParams), home
}

func newPair(t *testing.T) (*crypto.PublicKey, *crypto.PrivateKey) {
	t.Helper()
	pub, priv, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	return pub, priv
}

func TestKeyPair_SaveLoad_OK(t *testing.T) {
	ks, home := newStore(t)
	var _ domain.KeyStore = ks
	pub, priv := newPair(t)

	require.NoError(t, ks.SaveKeyPair("signing", "pass", pub, priv))

	gotPub, err := ks.LoadPublicKey("signing")
	require.NoError(t, err)
	assert.True(t, gotPub.Equal(pub))

	gotPriv, err := ks.LoadPrivateKey("signing", "pass")
	require.NoError(t, err)
	assert.True(t, gotPriv.Public().Equal(pub))

	sig, err := crypto.SignString(gotPriv, "data")
	require.NoError(t, err)
	ok, err := crypto.VerifyString(pub, "data", sig)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, f := range []string{"public.pem", "private.pem.enc"} {
		info, err := os.Stat(filepath.Join(home, "signing", f))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), f)
	}

	raw, err := os.ReadFile(filepath.Join(home, "signing", "public.pem"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "-----BEGIN PUBLIC KEY-----")

	sealed, err := os.ReadFile(filepath.Join(home, "signing", "private.pem.enc"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "PRIVATE KEY")
	var env map[string]any
	require.NoError(t, json.Unmarshal(sealed, &env))
	assert.EqualValues(t, 1, env["v"])
	assert.EqualValues(t, fastParams.N, env["scrypt_N"])
}

func TestKeyPair_WrongPassphrase_Fails(t *testing.T) {
	ks, _ := newStore(t)
	pub, priv := newPair(t)
	require.NoError(t, ks.SaveKeyPair("k", "correct", pub, priv))

	_, err := ks.LoadPrivateKey("k", "wrong")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeyPair_TamperedCiphertext_Fails(t *testing.T) {
	ks, home := newStore(t)
	pub, priv := newPair(t)
	require.NoError(t, ks.SaveKeyPair("k", "pass", pub, priv))

	path := filepath.Join(home, "k", "private.pem.enc")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var env map[string]any
	require.NoError(t, json.Unmarshal(b, &env))
	env["cipher"] = "AAAA"
	b, err = json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	_, err = ks.LoadPrivateKey("k", "pass")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeyPair_SealedKeyBoundToName(t *testing.T) {
	ks, home := newStore(t)
	pubA, privA := newPair(t)
	pubB, privB := newPair(t)
	require.NoError(t, ks.SaveKeyPair("a", "pass", pubA, privA))
	require.NoError(t, ks.SaveKeyPair("b", "pass", pubB, privB))

	sealedA, err := os.ReadFile(filepath.Join(home, "a", "private.pem.enc"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, "b", "private.pem.enc"), sealedA, 0o600))

	_, err = ks.LoadPrivateKey("b", "pass")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeyPair_Exists(t *testing.T) {
	ks, _ := newStore(t)
	pub, priv := newPair(t)
	require.NoError(t, ks.SaveKeyPair("dup", "pass", pub, priv))

	err := ks.SaveKeyPair("dup", "pass", pub, priv)
	require.ErrorIs(t, err, store.ErrKeyExists)
}

func TestKeyPair_NotFound(t *testing.T) {
	ks, _ := newStore(t)

	_, err := ks.LoadPublicKey("missing")
	require.ErrorIs(t, err, store.ErrKeyNotFound)

	_, err = ks.LoadPrivateKey("missing", "pass")
	require.ErrorIs(t, err, store.ErrKeyNotFound)

	require.ErrorIs(t, ks.DeleteKey("missing"), store.ErrKeyNotFound)
}

func TestKeyPair_MismatchedPair(t *testing.T) {
	ks, _ := newStore(t)
	pub, _ := newPair(t)
	_, priv := newPair(t)

	err := ks.SaveKeyPair("k", "pass", pub, priv)
	require.ErrorIs(t, err, crypto.ErrInvalidKey)

	err = ks.SaveKeyPair("k", "pass", pub, nil)
	require.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestValidateKeyName(t *testing.T) {
	for _, ok := range []domain.KeyName{"a", "release-2024", "ci.signing_key", "A1"} {
		assert.NoError(t, store.ValidateKeyName(ok), ok)
	}
	for _, bad := range []domain.KeyName{"", ".", "..", "a/b", "../etc", "with space", domain.KeyName(make([]byte, 65))} {
		assert.ErrorIs(t, store.ValidateKeyName(bad), store.ErrInvalidKeyName, bad)
	}
}

func TestListAndDelete(t *testing.T) {
	ks, home := newStore(t)

	names, err := ks.ListKeys()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, n := range []domain.KeyName{"zeta", "alpha", "mid"} {
		pub, priv := newPair(t)
		require.NoError(t, ks.SaveKeyPair(n, "pass", pub, priv))
	}
	// stray entries are ignored
	require.NoError(t, os.WriteFile(filepath.Join(home, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(home, "empty"), 0o700))
	require.NoError(t, os.Mkdir(filepath.Join(home, "sealed-only"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, "sealed-only", "private.pem.enc"), []byte("{}"), 0o600))

	names, err = ks.ListKeys()
	require.NoError(t, err)
	assert.Equal(t, []domain.KeyName{"alpha", "mid", "zeta"}, names)

	require.NoError(t, ks.DeleteKey("mid"))
	names, err = ks.ListKeys()
	require.NoError(t, err)
	assert.Equal(t, []domain.KeyName{"alpha", "zeta"}, names)
}

func TestScryptParamsValidate(t *testing.T) {
	require.NoError(t, store.DefaultScryptParams().Validate())
	require.NoError(t, fastParams.Validate())
	assert.Error(t, store.ScryptParams{N: 1000, R: 8, P: 1}.Validate())
	assert.Error(t, store.ScryptParams{N: 1 << 10, R: 0, P: 1}.Validate())
	assert.Error(t, store.ScryptParams{N: 1, R: 8, P: 1}.Validate())
}
