package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsign/internal/crypto"
)

func TestSaveKeyPair_PartialWriteRollsBack(t *testing.T) {
	errDiskFull := errors.New("disk full")
	orig := writeKeyFile
	t.Cleanup(func() { writeKeyFile = orig })
	writeKeyFile = func(path string, b []byte, mode os.FileMode) error {
		if filepath.Base(path) == publicKeyFile {
			return errDiskFull
		}
		return orig(path, b, mode)
	}

	root := t.TempDir()
	ks := NewKeyFileStoreWithParams(root, ScryptParams{N: 1 << 4, R: 8, P: 1})
	pub, priv, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	err = ks.SaveKeyPair("half", "pass", pub, priv)
	require.ErrorIs(t, err, errDiskFull)

	_, err = os.Stat(filepath.Join(root, "half"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	names, err := ks.ListKeys()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = ks.LoadPrivateKey("half", "pass")
	require.ErrorIs(t, err, ErrKeyNotFound)

	writeKeyFile = orig
	require.NoError(t, ks.SaveKeyPair("half", "pass", pub, priv))
	names, err = ks.ListKeys()
	require.NoError(t, err)
	assert.Len(t, names, 1)
}
