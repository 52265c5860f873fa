package credential_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/philly/arch-gallery/backend/internal/adapters/credential"
)

func newBcrypt() *credential.Bcrypt {
	return credential.NewBcrypt(credential.Config{Cost: bcrypt.MinCost, VerifyTimeout: time.Second})
}

func TestHashAndVerify(t *testing.T) {
	b := newBcrypt()
	ctx := context.Background()

	hash, err := b.HashPassword("sunset-2024")
	require.NoError(t, err)
	assert.NotEqual(t, "sunset-2024", hash)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{name: "correct password", plain: "sunset-2024", hash: hash, want: true},
		{name: "wrong password", plain: "sunrise-2024", hash: hash, want: false},
		{name: "empty password", plain: "", hash: hash, want: false},
		{name: "malformed hash", plain: "sunset-2024", hash: "not-a-hash", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.VerifyPassword(ctx, tt.plain, tt.hash))
		})
	}
}

func TestHashesAreSalted(t *testing.T) {
	b := newBcrypt()

	first, err := b.HashPassword("same")
	require.NoError(t, err)
	second, err := b.HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	_, err := newBcrypt().HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestVerifyFailsClosedOnCancelledContext(t *testing.T) {
	b := newBcrypt()
	hash, err := b.HashPassword("sunset-2024")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, b.VerifyPassword(ctx, "sunset-2024", hash))
}

func TestVerifyHonoursTimeout(t *testing.T) {
	// A cost-12 comparison takes far longer than a millisecond.
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), 12)
	require.NoError(t, err)

	b := credential.NewBcrypt(credential.Config{Cost: bcrypt.MinCost, VerifyTimeout: time.Millisecond})
	assert.False(t, b.VerifyPassword(context.Background(), "pw", string(hash)))
}
