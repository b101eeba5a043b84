package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	accountID := uuid.New()
	token, err := CreateToken(accountID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.UserID)
}

func TestToken_SecretSetAfterPackageLoadIsPickedUp(t *testing.T) {
	// Simulates JWT_SECRET arriving via the .env file loaded in main, long
	// after this package initialized.
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.NoError(t, err)
}

func TestToken_WrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
