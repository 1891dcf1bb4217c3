package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32) // hex encoding doubles the byte count

	other, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(9)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{9}$`, code)

	short, err := GenerateNumericCode(4)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}$`, short)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("   "))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("value", "name"))

	err := ValidateRequired("   ", "department")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "department")
}
