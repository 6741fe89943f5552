package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a relay access token.
//
// The relay does not manage accounts: a token only proves that its holder
// knows the shared sign key. Subject names the calling client (for example
// "tui" or a deployment name) and ends up in request logs.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Caller is the parsed "sub" claim.
	Caller string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
