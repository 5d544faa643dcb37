package crypto_test

import (
	"encoding/hex"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsign/internal/crypto"
)

var hexSignature = regexp.MustCompile(`^[0-9a-f]+$`)

func TestSign_ProducesHexDER(t *testing.T) {
	_, priv := newKeyPair(t)

	sig, err := crypto.SignString(priv, "test data")
	require.NoError(t, err)
	assert.Regexp(t, hexSignature, sig)
	assert.LessOrEqual(t, len(sig), 2*crypto.MaxSignatureSize)

	raw, err := hex.DecodeString(sig)
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), raw[0], "DER SEQUENCE tag")
}

func TestSignVerify_RoundTrip(t *testing.T) {
	pub, priv := newKeyPair(t)

	for _, data := range [][]byte{
		[]byte("test data"),
		{},
		make([]byte, 1<<16),
	} {
		sig, err := crypto.Sign(priv, data)
		require.NoError(t, err)

		ok, err := crypto.Verify(pub, data, sig)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestSign_RandomizedButBothVerify(t *testing.T) {
	pub, priv := newKeyPair(t)

	a, err := crypto.SignString(priv, "same data")
	require.NoError(t, err)
	b, err := crypto.SignString(priv, "same data")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	for _, sig := range []string{a, b} {
		ok, err := crypto.VerifyString(pub, "same data", sig)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerify_Mismatches(t *testing.T) {
	pub, priv := newKeyPair(t)
	otherPub, _ := newKeyPair(t)

	sig, err := crypto.SignString(priv, "original")
	require.NoError(t, err)

	t.Run("tampered data", func(t *testing.T) {
		ok, err := crypto.VerifyString(pub, "originaL", sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong key", func(t *testing.T) {
		ok, err := crypto.VerifyString(otherPub, "original", sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tampered signature", func(t *testing.T) {
		raw, err := hex.DecodeString(sig)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01
		ok, err := crypto.Verify(pub, []byte("original"), hex.EncodeToString(raw))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("uppercase hex is accepted", func(t *testing.T) {
		ok, err := crypto.VerifyString(pub, "original", strings.ToUpper(sig))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestVerify_MalformedSignature(t *testing.T) {
	pub, priv := newKeyPair(t)
	good, err := crypto.SignString(priv, "data")
	require.NoError(t, err)

	for name, sig := range map[string]string{
		"empty":          "",
		"not hex":        "zz",
		"odd length":     "abc",
		"not a sequence": "020101",
		"truncated":      "3006020101",
		"trailing bytes": good + "00",
		"extra element":  "3009020101020101020101",
		"too long":       hex.EncodeToString(make([]byte, 80)),
	} {
		t.Run(name, func(t *testing.T) {
			ok, err := crypto.VerifyString(pub, "data", sig)
			require.ErrorIs(t, err, crypto.ErrMalformedSignature)
			assert.False(t, ok)
		})
	}
}

func TestSignVerify_WrongRole(t *testing.T) {
	pub, priv := newKeyPair(t)

	_, err := crypto.SignString(pub, "data")
	require.ErrorIs(t, err, crypto.ErrInvalidKey)
	require.ErrorIs(t, err, crypto.ErrKeyRoleMismatch)

	sig, err := crypto.SignString(priv, "data")
	require.NoError(t, err)

	_, err = crypto.VerifyString(priv, "data", sig)
	require.ErrorIs(t, err, crypto.ErrInvalidKey)
	require.ErrorIs(t, err, crypto.ErrKeyRoleMismatch)

	_, err = crypto.SignString(nil, "data")
	require.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestSignFrom_RandomnessUnavailable(t *testing.T) {
	_, priv := newKeyPair(t)
	_, err := crypto.SignFrom(failingReader{}, priv, []byte("data"))
	require.ErrorIs(t, err, crypto.ErrRandomnessUnavailable)

	_, err = crypto.SignFrom(nil, priv, []byte("data"))
	require.ErrorIs(t, err, crypto.ErrRandomnessUnavailable)
}

func TestSignVerify_ConcurrentSharedKey(t *testing.T) {
	pub, priv := newKeyPair(t)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			data := []byte{byte(i)}
			sig, err := crypto.Sign(priv, data)
			if err != nil {
				errs <- err
				return
			}
			ok, err := crypto.Verify(pub, data, sig)
			if err != nil {
				errs <- err
				return
			}
			if !ok {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
