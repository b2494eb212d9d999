package http

import "errors"

// Sentinels for Authorization header parsing in the auth middleware; match
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the request carries no Authorization
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is present but the token value is
	// blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
