package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed_token")
	ErrExpiredToken   = errors.New("expired_token")
	ErrInvalidToken   = errors.New("invalid_token")
)

const DefaultTokenTTL = 30 * time.Minute

// Tokens issues and validates stateless HS256 session tokens. A token cannot
// be revoked before expiry short of rotating the secret; the bounded TTL is
// the mitigation.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed token bound to the admin plus its lifetime in seconds.
func (t *Tokens) Issue(adminID string) (string, int, error) {
	now := t.now().UTC()
	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": now.Add(t.ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int(t.ttl.Seconds()), nil
}

// Validate checks signature and expiry and returns the admin id from the sub
// claim. Expiry is compared against UTC now with zero leeway, matching
// issuance. Callers still have to confirm the admin exists.
func (t *Tokens) Validate(tokenStr string) (string, error) {
	parsed, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpiredToken
		default:
			return "", ErrInvalidToken
		}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
