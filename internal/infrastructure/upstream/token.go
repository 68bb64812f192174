package upstream

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fastygo/assignment-board/internal/config"
)

// TokenSource yields the bearer token attached to outbound requests.
// An empty token means the request is sent without Authorization.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken always returns the same token.
type StaticToken string

func (s StaticToken) Token() (string, error) {
	return string(s), nil
}

// JWTSource mints a short-lived HS256 token per request.
type JWTSource struct {
	secret  []byte
	issuer  string
	subject string
	ttl     time.Duration
	now     func() time.Time
}

func NewJWTSource(secret, issuer, subject string, ttl time.Duration) *JWTSource {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &JWTSource{
		secret:  []byte(secret),
		issuer:  issuer,
		subject: subject,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *JWTSource) Token() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   s.subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// NewTokenSource picks the token strategy configured for the service:
// a signing secret wins over a static token.
func NewTokenSource(cfg config.UpstreamConfig) TokenSource {
	switch {
	case cfg.JWTSecret != "":
		return NewJWTSource(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTSubject, cfg.JWTTTL)
	case cfg.Token != "":
		return StaticToken(cfg.Token)
	default:
		return nil
	}
}
