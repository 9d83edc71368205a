// Package jwt signs and checks HS256 JSON web tokens.
package jwt

import (
	"context"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/clock"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/timeutil"
)

// Claims are the caller-supplied claims of a token.
type Claims struct {
	Audience string
	Subject  string
}

// Service issues and verifies tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	clock  clock.Clock
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for iat, exp and expiry checks.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// NewService creates a Service that signs with secret.
func NewService(secret string, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		clock:  clock.RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign issues a token for claims expiring after expiry ("30s", "15m", "1h", "7d").
// The token carries aud, sub, iat, exp and a random jti.
func (s *Service) Sign(ctx context.Context, claims Claims, expiry string) (string, error) {
	now := s.clock.Now()
	exp, err := timeutil.ParseExpiry(now, expiry)
	if err != nil {
		return "", err
	}

	registered := gojwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   claims.Subject,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(exp),
	}
	if claims.Audience != "" {
		registered.Audience = gojwt.ClaimStrings{claims.Audience}
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, registered).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	zerolog.Ctx(ctx).Debug().
		Str("jti", registered.ID).
		Str("sub", claims.Subject).
		Time("exp", exp).
		Msg("token issued")
	return token, nil
}

// Verify checks the token signature and reports whether it is still unexpired.
// A malformed token, a bad signature or a missing exp claim is an error wrapping
// errors.ErrTokenInvalid. The audience is not checked.
func (s *Service) Verify(ctx context.Context, token string) (bool, error) {
	parser := gojwt.NewParser(
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithoutClaimsValidation(),
	)

	var claims gojwt.RegisteredClaims
	_, err := parser.ParseWithClaims(token, &claims, func(*gojwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return false, errors.Join(errors.ErrTokenInvalid, err, "parsing token")
	}
	if claims.ExpiresAt == nil {
		return false, fmt.Errorf("%w: missing exp claim", errors.ErrTokenInvalid)
	}

	valid := claims.ExpiresAt.After(s.clock.Now())
	zerolog.Ctx(ctx).Debug().
		Str("jti", claims.ID).
		Time("exp", claims.ExpiresAt.Time).
		Bool("valid", valid).
		Msg("token verified")
	return valid, nil
}
