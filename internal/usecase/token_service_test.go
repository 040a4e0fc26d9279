package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time           { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestJWTTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewJWTTokenService("test-secret", 0, WithClock(clock.Now))

	token, err := svc.Sign("user-1", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, clock.t.Add(30*time.Second), token.ExpiresAt)

	claims, err := svc.Decode(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestJWTTokenService_ExpiresAfterThirtySeconds(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewJWTTokenService("test-secret", DefaultAccessTokenTTL, WithClock(clock.Now))

	token, err := svc.Sign("user-1", "ada@example.com")
	require.NoError(t, err)

	clock.Advance(29 * time.Second)
	_, err = svc.Decode(token.AccessToken)
	assert.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = svc.Decode(token.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTTokenService_RejectsForeignTokens(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Minute)

	other := NewJWTTokenService("other-secret", time.Minute)
	foreign, err := other.Sign("user-1", "ada@example.com")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "user-1"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret":   foreign.AccessToken,
		"missing exp":    noExp,
		"other hmac alg": hs512,
		"alg none":       unsigned,
		"garbage":        "not-a-jwt",
		"empty":          "",
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Decode(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTTokenService_SubjectFallback(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Minute)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-9",
		"email": "x@example.com",
		"exp":   time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.UserID)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	digest, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", digest)

	assert.True(t, h.Verify("correct horse", digest))
	assert.False(t, h.Verify("correct horsf", digest))
	assert.False(t, h.Verify("Correct horse", digest))
	assert.False(t, h.Verify("correct horse", ""))
	assert.False(t, h.Verify("correct horse", "not-a-bcrypt-hash"))

	again, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, digest, again, "salted hashes differ")
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, 10, NewBcryptHasher(0).cost)
	assert.Equal(t, 10, NewBcryptHasher(64).cost)
}
