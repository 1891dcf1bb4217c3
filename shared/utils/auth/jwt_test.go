package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "ada@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "ada@example.com", "employee")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateJWT(tampered)
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "ada@example.com", "manager")
	require.NoError(t, err)

	assert.False(t, IsTokenExpired(token))
	assert.True(t, IsTokenExpired("junk"))
}
