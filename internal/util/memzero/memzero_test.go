package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecsign/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte("secret material")
	memzero.Zero(b)
	assert.Equal(t, make([]byte, len(b)), b)

	// nil and empty slices are a no-op.
	memzero.Zero(nil)
	memzero.Zero([]byte{})
}
