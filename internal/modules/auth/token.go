package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wellwisher/wellwisher-backend/internal/modules/user"
)

// Claims is the token payload: the registered claims plus the user's email
// and role. The user id travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

// GenerateToken signs an HS256 token for the user, expiring after ttl.
func GenerateToken(u *user.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: u.Email,
		Role:  u.Role,
	})
	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry of a token and returns its
// claims. Expired or tampered tokens produce an error.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
