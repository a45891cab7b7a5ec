package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStoreKeyValidation(t *testing.T) {
	_, err := NewSessionStore("not-hex")
	assert.Error(t, err)

	_, err = NewSessionStore("abcd")
	assert.Error(t, err)

	_, err = NewSessionStore(testKeyHex)
	assert.NoError(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	data := &SessionData{AdminID: "admin-1", Email: "ops@mintfire.dev", IssuedAt: time.Now()}
	require.NoError(t, store.CreateSession(ctx, "sess-1", data, time.Hour))

	got, err := store.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", got.AdminID)
	assert.Equal(t, "ops@mintfire.dev", got.Email)
}

func TestSessionStoredEncrypted(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	data := &SessionData{AdminID: "admin-1", Email: "ops@mintfire.dev", IssuedAt: time.Now()}
	require.NoError(t, store.CreateSession(context.Background(), "sess-1", data, time.Hour))

	raw, err := mr.Get("admin_session:sess-1")
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "ops@mintfire.dev"), "session payload must not be stored in the clear")
}

func TestDeleteSessionRevokes(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	data := &SessionData{AdminID: "admin-1", Email: "ops@mintfire.dev", IssuedAt: time.Now()}
	require.NoError(t, store.CreateSession(ctx, "sess-1", data, time.Hour))
	require.NoError(t, store.DeleteSession(ctx, "sess-1"))

	_, err = store.GetSession(ctx, "sess-1")
	assert.Error(t, err)
}

func TestSessionExpires(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	data := &SessionData{AdminID: "admin-1", Email: "ops@mintfire.dev", IssuedAt: time.Now()}
	require.NoError(t, store.CreateSession(ctx, "sess-1", data, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err = store.GetSession(ctx, "sess-1")
	assert.Error(t, err)
}

func TestIncrWithTTLAndGetInt(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	n, err := GetInt(ctx, "missing")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = GetInt(ctx, "counter")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
