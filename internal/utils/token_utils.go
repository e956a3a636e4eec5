package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khatapana/khata_backend/internal/apperrors"
)

// AccessClaims is the claim set carried by an access token. The username is
// included so protected handlers can resolve the identity without a store
// lookup.
type AccessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived access token for the given user.
func GenerateAccessToken(userID, username, secret string, expiry time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken signs a long-lived refresh token carrying only the
// user id. It uses a secret independent from the access secret so that
// leaking one cannot forge the other kind.
func GenerateRefreshToken(userID, secret string, expiry time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates an access token and returns its claims.
// Expired tokens are reported as apperrors.ErrTokenExpired so callers can
// branch to the refresh path explicitly; every other failure is
// apperrors.ErrTokenInvalid.
func ParseAccessToken(tokenString, secret string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parseInto(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns its claims.
func ParseRefreshToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if err := parseInto(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func parseInto(tokenString, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %w", apperrors.ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %w", apperrors.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return apperrors.ErrTokenInvalid
	}
	return nil
}
