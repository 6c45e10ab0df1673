package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.AuthenticatedPayload{ID: "user-123", Email: "a@x.com", Name: "A"}

func TestSignAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), time.Hour)

	tok, err := codec.Sign(alice)
	require.NoError(t, err)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, alice, claims.Payload())
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestSign_DistinctTokensInSameInstant(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	codec := NewTokenCodec([]byte("k"), time.Hour, WithClock(func() time.Time { return fixed }))

	a, err := codec.Sign(alice)
	require.NoError(t, err)
	b, err := codec.Sign(alice)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), -1*time.Second)

	tok, err := codec.Sign(alice)
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_ExpiresWithClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec([]byte("secret"), time.Minute, WithClock(func() time.Time { return now }))

	tok, err := codec.Sign(alice)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec([]byte("right-secret"), time.Hour).Sign(alice)
	require.NoError(t, err)

	_, err = NewTokenCodec([]byte("wrong-secret"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenCodec([]byte("k"), time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Email:            "a@x.com",
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenCodec(secret, time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@x.com"}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenCodec(secret, time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSign_KeepsSubSecondPrecision(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 250*int(time.Millisecond), time.UTC)
	codec := NewTokenCodec([]byte("k"), time.Hour, WithClock(func() time.Time { return now }))

	tok, err := codec.Sign(alice)
	require.NoError(t, err)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestRefresh_LaterExpiryAtSameInstant(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec([]byte("k"), time.Hour, WithClock(func() time.Time { return fixed }))

	tok, err := codec.Sign(alice)
	require.NoError(t, err)
	original, err := codec.Verify(tok)
	require.NoError(t, err)

	refreshedTok, err := codec.Refresh(original)
	require.NoError(t, err)
	refreshed, err := codec.Verify(refreshedTok)
	require.NoError(t, err)

	assert.Equal(t, alice, refreshed.Payload())
	assert.True(t, refreshed.ExpiresAt.After(original.ExpiresAt.Time))
}

func TestRefresh_UsesFreshWindowWhenLater(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec([]byte("k"), time.Hour, WithClock(func() time.Time { return now }))

	tok, err := codec.Sign(alice)
	require.NoError(t, err)
	original, err := codec.Verify(tok)
	require.NoError(t, err)

	now = now.Add(5 * time.Minute)
	refreshedTok, err := codec.Refresh(original)
	require.NoError(t, err)
	refreshed, err := codec.Verify(refreshedTok)
	require.NoError(t, err)

	assert.True(t, now.Add(time.Hour).Equal(refreshed.ExpiresAt.Time))
}
