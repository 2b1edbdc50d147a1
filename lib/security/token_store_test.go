package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStoreWithClient(client), mr
}

func TestRevokeTokenRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Hour))

	revoked, err = store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Other tokens are untouched.
	revoked, err = store.IsTokenRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeTokenExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation entry decays with the token")
}

func TestRevokeTokenSkipsExpiredTokens(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// A token past its own expiry needs no revocation entry.
	require.NoError(t, store.RevokeToken(ctx, "jti-1", -time.Minute))

	revoked, err := store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLoginFailureCounter(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	count, err := store.LoginFailures(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := int64(1); i <= 3; i++ {
		count, err = store.RecordLoginFailure(ctx, "a@example.com", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	count, err = store.LoginFailures(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Counters are scoped per key.
	count, err = store.LoginFailures(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoginFailureWindowExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.RecordLoginFailure(ctx, "a@example.com", 15*time.Minute)
	require.NoError(t, err)
	_, err = store.RecordLoginFailure(ctx, "a@example.com", 15*time.Minute)
	require.NoError(t, err)

	mr.FastForward(16 * time.Minute)

	count, err := store.LoginFailures(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Zero(t, count, "failures reset once the window passes")
}

func TestClearLoginFailures(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.RecordLoginFailure(ctx, "a@example.com", 15*time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.ClearLoginFailures(ctx, "a@example.com"))

	count, err := store.LoginFailures(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Zero(t, count)
}
