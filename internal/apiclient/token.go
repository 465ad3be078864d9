package apiclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenParser only inspects claims; signature verification belongs to the
// backend that issued the token.
var tokenParser = jwt.NewParser(jwt.WithoutClaimsValidation())

// TokenExpiry extracts the exp claim from a JWT without verifying it.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, jwt.ErrTokenInvalidClaims
	}
	return exp.Time, nil
}

// TokenValid reports whether the token parses and has not expired.
// An unparseable token counts as expired.
func TokenValid(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return exp.After(now)
}

// ExpiresWithin reports whether the token expires inside the window (or is
// already expired, or cannot be parsed).
func ExpiresWithin(token string, window time.Duration, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return true
	}
	return !exp.After(now.Add(window))
}

// TokenUserID pulls the user id out of a token's claims, trying the claim
// names the backend has used across versions.
func TokenUserID(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"user_id", "sub", "id"} {
		if v, ok := claims[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
