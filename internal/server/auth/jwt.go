// Package auth implements the credential primitives of the service:
// HS256 bearer tokens and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/avolkovs/teambase/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by access tokens. The authenticated user's
// normalized email travels in the registered subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for subject that expires after
// validityDuration.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	return token.SignedString(secretKey)
}

// GetSubjectFromToken checks the signature and expiry of tokenString and
// returns its subject. Expired, tampered and malformed tokens all yield
// common.ErrInvalidToken; there is no revocation path.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
