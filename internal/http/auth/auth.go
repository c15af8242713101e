// Package auth resolves the calling owner from a bearer token. Token issuance lives
// elsewhere; this package only verifies HS256 tokens whose subject is the owner id.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ownerKey struct{}

// WithOwner returns a copy of ctx carrying ownerID.
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerID returns the owner stored by Middleware, or uuid.Nil.
func OwnerID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(ownerKey{}).(uuid.UUID)
	return id
}

func Middleware(secret []byte) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims jwt.RegisteredClaims
			if _, err := jwt.ParseWithClaims(raw, &claims, keyFunc,
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			); err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ownerID, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, "invalid token subject", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), ownerID)))
		})
	}
}
