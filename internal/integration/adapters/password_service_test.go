package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService(bcrypt.MinCost)

	hash, err := service.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, service.VerifyPassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, service.VerifyPassword(hash, "wrong"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestPasswordService_InvalidCostFallsBackToDefault(t *testing.T) {
	service := NewPasswordService(99)

	hash, err := service.HashPassword("s3cret-pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
