package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = 8 * time.Hour

// Verification failures. Each maps to a 401 with its own message.
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenNoSubject = errors.New("token has no subject")
)

// IssueToken signs an HS256 token asserting identity, valid for TokenTTL
// from now. Issue and verify take the secret and clock explicitly so they
// stay pure and testable without a running service.
func IssueToken(identity string, secret []byte, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken checks signature and expiry against now and returns the
// identity the token asserts. Verification is stateless: an unexpired token
// stays valid until its natural expiry.
func VerifyToken(tokenString string, secret []byte, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrTokenSignature
	default:
		return "", ErrTokenMalformed
	}
	if claims.Subject == "" {
		return "", ErrTokenNoSubject
	}
	return claims.Subject, nil
}

// TokenService binds the server secret to the pure issue/verify functions.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(identity string) (string, error) {
	return IssueToken(identity, s.secret, time.Now())
}

func (s *TokenService) Verify(tokenString string) (string, error) {
	return VerifyToken(tokenString, s.secret, time.Now())
}
