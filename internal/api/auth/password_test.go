package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Compare(hash, "password123"))
	assert.False(t, hasher.Compare(hash, "password124"))
	assert.False(t, hasher.Compare("not-a-bcrypt-hash", "password123"))

	again, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "each hash carries its own salt")
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}
