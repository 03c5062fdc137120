package auth

import (
	"errors"
	"fmt"
	"time"

	"rentwheels/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// Session is the entire payload a cookie carries: a stable reference to the
// identity plus its role. The identity row itself is re-fetched per request.
type Session struct {
	ID   string
	Role entities.Role
}

func MintToken(secret []byte, s Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":  s.ID,
		"role": string(s.Role),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid session claims")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || (role != string(entities.RoleUser) && role != string(entities.RoleAdmin)) {
		return nil, errors.New("invalid session claims")
	}
	return &Session{ID: sub, Role: entities.Role(role)}, nil
}
