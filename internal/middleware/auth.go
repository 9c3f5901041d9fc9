package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomdyson/stripe-payments-report/internal/session"
	"github.com/tomdyson/stripe-payments-report/internal/token"
)

// unexported, collision-proof context key
type authenticatedContextKeyType struct{}

var authenticatedKey = authenticatedContextKeyType{}

// IsAuthenticated reports whether the request passed the session gate.
// There is only one principal, so a boolean is the whole identity.
func IsAuthenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(authenticatedKey).(bool)
	return ok
}

type AuthMiddleware struct {
	Codec *token.Codec
}

func NewAuthMiddleware(codec *token.Codec) *AuthMiddleware {
	return &AuthMiddleware{Codec: codec}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 2. Validate credential. Expiry gets its own message so the
		// dashboard can tell the user to log in again; signature and
		// parse failures stay generic.
		if err := a.Codec.Validate(cookie.Value); err != nil {
			if errors.Is(err, token.ErrExpired) {
				http.Error(w, "token expired", http.StatusUnauthorized)
				return
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Mark request authenticated
		ctx := context.WithValue(r.Context(), authenticatedKey, true)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
