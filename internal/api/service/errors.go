package service

import "errors"

// Sentinel domain errors. Handlers map these to transport status codes via
// the httperr package; nothing downstream inspects error strings.
var (
	// ErrValidation is the base of all bad-input failures. Wrap it with
	// context: fmt.Errorf("%w: title is required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is deliberately generic: absent user and wrong
	// password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means no usable credentials were presented at all.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the identity is valid but lacks the rights.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// owns is the single ownership predicate shared by every resource type.
func owns(actorID, resourceOwnerID int64) bool {
	return actorID == resourceOwnerID
}
