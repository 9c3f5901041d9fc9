package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid covers malformed tokens and signature mismatches.
	ErrInvalid = errors.New("token: invalid token")
	// ErrExpired means the token was authentic but its expiry has passed.
	ErrExpired = errors.New("token: token expired")
)

// Codec mints and validates the dashboard's session credential: an
// HMAC-SHA256 signed JWT whose only claim is an absolute expiry. There is
// no subject or audience claim because there is exactly one principal
// (whoever knows the shared password), and no server-side session state.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

const DefaultTTL = 24 * time.Hour

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed credential expiring at now + ttl (UTC).
func (c *Codec) Issue() (string, error) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(c.now().UTC().Add(c.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}

	return signed, nil
}

// Validate verifies the signature and expiry. It returns nil for an
// authentic, unexpired credential, ErrExpired when only the expiry failed,
// and ErrInvalid for everything else. Expiry is reported separately so the
// gate can tell the caller their session timed out rather than returning a
// generic rejection.
func (c *Codec) Validate(raw string) error {
	_, err := jwt.Parse(
		raw,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	if err == nil {
		return nil
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpired
	}

	return ErrInvalid
}
