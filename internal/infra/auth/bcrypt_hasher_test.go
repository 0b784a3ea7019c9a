package auth

import (
	"strings"
	"testing"

	"chaski/config"
	domainerrors "chaski/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("secreto1")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", hash)

	assert.True(t, hasher.Check("secreto1", hash))
	assert.False(t, hasher.Check("Secreto1", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secreto1", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: newTestHasherConfig(bcrypt.MinCost), want: bcrypt.MinCost},
		{name: "out of range", cfg: newTestHasherConfig(bcrypt.MaxCost + 1), want: bcrypt.DefaultCost},
		{name: "zero", cfg: newTestHasherConfig(0), want: bcrypt.DefaultCost},
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("a", 73))

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
