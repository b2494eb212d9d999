package service

import "errors"

var (
	// ErrValidation is returned for any malformed or unacceptable input:
	// empty credentials, unknown roles, unsupported upload types, blank
	// search queries.
	ErrValidation = errors.New("invalid data provided")

	// ErrWrongCredentials is returned on login when the username is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguishable from the outside.
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure:
	// bad signature, wrong issuer, expiry, malformed string.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccessDenied is returned when the authenticated user is not allowed
	// to perform the requested operation on the target resource.
	ErrAccessDenied = errors.New("access denied")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
