package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/threestrands/threestrands/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired session token")

// Sessions issues and verifies admin session tokens. Credentials come from
// configuration; the comparison is constant time so the endpoint does not
// leak which of the two fields was wrong.
type Sessions struct {
	username string
	password string
	secret   []byte
	lifetime time.Duration
	clock    utils.Clock
}

func NewSessions(username, password, secret string, lifetime time.Duration, clock utils.Clock) *Sessions {
	return &Sessions{
		username: username,
		password: password,
		secret:   []byte(secret),
		lifetime: lifetime,
		clock:    clock,
	}
}

// Login checks the credentials and returns a signed session token. An empty
// configured password or secret never authenticates: without them the
// zero-length compare and the empty HMAC key would both pass.
func (s *Sessions) Login(username, password string) (string, error) {
	if s.password == "" || len(s.secret) == 0 {
		return "", ErrInvalidCredentials
	}
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOk || !passOk {
		return "", ErrInvalidCredentials
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and checks its signature and expiry.
func (s *Sessions) Verify(tokenString string) error {
	if len(s.secret) == 0 {
		return ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
