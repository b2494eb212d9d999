package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token couples the parsed JWT with the compact serialized form that travels
// in the Authorization header. Only SignedString ever leaves the process;
// the embedded token and claims are for server-side inspection.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form, header.payload.signature.
	SignedString string `json:"-"`

	// Username caches the "sub" claim after construction or parsing.
	Username string `json:"-"`
}

// GetUsername returns the account identifier from the "sub" claim.
func (t *Token) GetUsername() (string, error) {
	return t.GetSubject()
}

// String implements [fmt.Stringer] with the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
