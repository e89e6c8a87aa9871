package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	svc := NewWithCost(4)

	hash, err := svc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, svc.ComparePassword(hash, "s3cret-pass"))
	assert.Error(t, svc.ComparePassword(hash, "wrong-pass"))
}

func TestHashIsSalted(t *testing.T) {
	svc := NewWithCost(4)

	first, err := svc.HashPassword("same-password")
	require.NoError(t, err)
	second, err := svc.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
