package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPlaintext(t *testing.T) {
	v, err := NewVerifier("hunter2", "")
	require.NoError(t, err)

	assert.NoError(t, v.Verify("hunter2"))
	assert.ErrorIs(t, v.Verify("hunter3"), ErrInvalidPassword)
	assert.ErrorIs(t, v.Verify(""), ErrInvalidPassword)
}

func TestVerifyBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewVerifier("", string(hash))
	require.NoError(t, err)

	assert.NoError(t, v.Verify("hunter2"))
	assert.ErrorIs(t, v.Verify("hunter3"), ErrInvalidPassword)
}

func TestHashWinsOverPlaintext(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewVerifier("from-plaintext", string(hash))
	require.NoError(t, err)

	assert.NoError(t, v.Verify("from-hash"))
	assert.ErrorIs(t, v.Verify("from-plaintext"), ErrInvalidPassword)
}

func TestNoPasswordConfigured(t *testing.T) {
	_, err := NewVerifier("", "")
	assert.Error(t, err)
}
