package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"socialcosmos/internal/domain"
)

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func generateAccessToken(username domain.Username, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Username: username.String(),
	})
	return token.SignedString(secret)
}

func usernameFromAccessToken(tokenString string, secret []byte) (domain.Username, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", domain.ErrInvalidCredentials
	}
	return domain.Username(c.Username), nil
}
