package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token ready to be
// transmitted in HTTP headers. UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// ExpiresAtUnix returns the "exp" claim in seconds since the epoch, or zero
// when the claim is missing.
func (t *Token) ExpiresAtUnix() int64 {
	if t.ExpiresAt == nil {
		return 0
	}
	return t.ExpiresAt.Unix()
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
