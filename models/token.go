package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of a backend bearer token.
// The subject carries the user id; Login is informational.
type TokenClaims struct {
	jwt.RegisteredClaims
	Login string `json:"login,omitempty"`
}

// Token is a signed or parsed backend bearer token.
type Token struct {
	// Token is the underlying JWT, nil for tokens that were never parsed.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed subject claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
