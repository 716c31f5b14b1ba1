package core

import (
	"errors"

	"pawmart-backend-go/internal/auth"
)

// ErrForbiddenAccess is returned when a verified identity does not own the
// resource it is trying to mutate.
var ErrForbiddenAccess = errors.New("forbidden: not the resource owner")

// ErrEmailMismatch is returned by the own-listings lookup when the requested
// email differs from the verified identity. The route answers it with 401
// rather than 403, matching long-standing client expectations.
var ErrEmailMismatch = errors.New("email does not match authenticated user")

// Authorize decides whether the verified identity may act on a resource
// owned by ownerEmail. Ownership is pure email equality; the owner email
// must come from the stored record, never from a request payload.
func Authorize(identity auth.Identity, ownerEmail string) error {
	if identity.Email != ownerEmail {
		return ErrForbiddenAccess
	}
	return nil
}
