package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the object API.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for claim access. The "sub" claim carries the account the objects belong
// to: every object API call is scoped to it.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// AccountID is a cached copy of the "sub" claim.
	AccountID string `json:"-"`
}

// GetAccountID returns the account identifier stored in the "sub" claim.
func (t *Token) GetAccountID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting account id from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("error extracting account id from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
