package credentials

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// Verifier checks a submitted password against the single shared secret
// configured for the dashboard. The secret is either a plaintext value
// (compared in constant time) or a bcrypt hash; when both are configured
// the hash wins.
type Verifier struct {
	password     string
	passwordHash string
}

func NewVerifier(password string, passwordHash string) (*Verifier, error) {
	if password == "" && passwordHash == "" {
		return nil, errors.New("no dashboard password configured")
	}

	return &Verifier{
		password:     password,
		passwordHash: passwordHash,
	}, nil
}

// Verify returns nil when submitted matches the configured secret and
// ErrInvalidPassword otherwise. It never reveals which check failed.
func (v *Verifier) Verify(submitted string) error {
	if v.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword(
			[]byte(v.passwordHash),
			[]byte(submitted),
		); err != nil {
			return ErrInvalidPassword
		}
		return nil
	}

	if subtle.ConstantTimeCompare(
		[]byte(v.password),
		[]byte(submitted),
	) != 1 {
		return ErrInvalidPassword
	}

	return nil
}
