package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by the identity cookie.
//
// It embeds [jwt.RegisteredClaims] (sub, iss, iat, exp) and adds the login of
// the principal so downstream handlers do not need a database round trip to
// know who is calling.
type Claims struct {
	jwt.RegisteredClaims

	// Login is the username of the authenticated principal.
	Login string `json:"login"`
}

// Token wraps a signed identity token with the values the server needs after
// parsing it.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). This is the cookie value.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Login is the username extracted from the "login" claim.
	Login string `json:"-"`

	// IssuedAt and ExpiresAt mirror the "iat" and "exp" claims.
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// GetUserID extracts the user identifier from the claims' "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
