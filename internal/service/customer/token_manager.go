package customer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenMeta struct {
	CustomerID int
	Email      string
}

// tokenManager signs and validates the bearer tokens carried in the
// USER-KEY header. Tokens are stateless HS256 claims, nothing persisted.
type tokenManager struct {
	key []byte
	ttl time.Duration
}

func newTokenManager(key []byte, ttl time.Duration) *tokenManager {
	return &tokenManager{key: key, ttl: ttl}
}

func (m *tokenManager) Issue(customerID int, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"customer_id": customerID,
		"email":       email,
		"iat":         now.Unix(),
		"exp":         now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *tokenManager) Validate(raw string) (tokenMeta, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil {
		return tokenMeta{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return tokenMeta{}, errors.New("invalid claims")
	}
	id, ok := claims["customer_id"].(float64)
	if !ok {
		return tokenMeta{}, errors.New("customer_id claim missing")
	}
	email, _ := claims["email"].(string)
	return tokenMeta{CustomerID: int(id), Email: email}, nil
}
