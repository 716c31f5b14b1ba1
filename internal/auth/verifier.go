package auth

import (
	"context"
	"errors"
)

// Identity is the verified caller derived from a bearer token. It lives for
// one request and is never persisted.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Typed verification failures. The auth middleware answers all of them with
// the same 401, but call sites and logs can tell them apart.
var (
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrVerifierUnavailable = errors.New("token verifier unavailable")
)

// TokenVerifier maps a bearer token to a verified identity or fails.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
