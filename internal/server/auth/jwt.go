// Package auth contains the two cryptographic capabilities the auth service
// relies on: a password hasher and a JWT codec.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token times carry milliseconds so that a token refreshed within the same
// second still gets a later exp.
func init() {
	jwt.TimePrecision = time.Millisecond
}

// Claims is the JWT body: the authenticated user's public fields plus the
// registered iat/exp/jti claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Payload drops the registered claims, leaving the user projection.
func (c *Claims) Payload() models.AuthenticatedPayload {
	return models.AuthenticatedPayload{ID: c.UserID, Email: c.Email, Name: c.Name}
}

// TokenCodec signs and verifies HS256 tokens with a fixed secret and TTL.
type TokenCodec struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

// TokenCodecOption tweaks a TokenCodec at construction.
type TokenCodecOption func(*TokenCodec)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *TokenCodec) { c.now = now }
}

func NewTokenCodec(secretKey []byte, validityDuration time.Duration, opts ...TokenCodecOption) *TokenCodec {
	c := &TokenCodec{secretKey: secretKey, validityDuration: validityDuration, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sign issues a token for payload that expires validityDuration from now.
func (c *TokenCodec) Sign(payload models.AuthenticatedPayload) (string, error) {
	now := c.now()
	return c.sign(payload, now, now.Add(c.validityDuration))
}

// Refresh issues a new token for the user in claims. Its exp is always
// strictly later than the exp in claims, even after a JSON round trip.
func (c *TokenCodec) Refresh(claims *Claims) (string, error) {
	now := c.now()
	exp := now.Add(c.validityDuration)
	if claims.ExpiresAt != nil {
		// Decoding fractional NumericDate goes through float64 and can lose
		// one unit of precision, so keep a two-unit gap.
		floor := claims.ExpiresAt.Time.Add(2 * jwt.TimePrecision)
		if exp.Truncate(jwt.TimePrecision).Before(floor) {
			exp = floor
		}
	}
	return c.sign(claims.Payload(), now, exp)
}

func (c *TokenCodec) sign(payload models.AuthenticatedPayload, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: payload.ID,
		Email:  payload.Email,
		Name:   payload.Name,
	})

	tokenString, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry and returns the decoded
// claims. Expired tokens yield common.ErrTokenExpired, everything else
// common.ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
