package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ClientTokens signs and verifies the browser client identifier carried in
// the client_id cookie. It identifies a browser, not a user.
type ClientTokens struct {
	Secret []byte
	TTL    time.Duration
}

func NewClientTokens(secret string, ttl time.Duration) *ClientTokens {
	return &ClientTokens{Secret: []byte(secret), TTL: ttl}
}

type ClientClaims struct {
	ClientID string `json:"cid"`
	jwt.RegisteredClaims
}

// NewClientID mints a fresh client id and its signed token.
func (m *ClientTokens) NewClientID() (clientID, token string, exp time.Time, err error) {
	clientID = uuid.NewString()
	token, exp, err = m.Sign(clientID)
	return clientID, token, exp, err
}

func (m *ClientTokens) Sign(clientID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse returns the client id of a valid token.
func (m *ClientTokens) Parse(tokenStr string) (string, error) {
	claims := &ClientClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tkn.Valid || claims.ClientID == "" {
		return "", errors.New("invalid token")
	}
	if _, err := uuid.Parse(claims.ClientID); err != nil {
		return "", errors.New("invalid client id")
	}
	return claims.ClientID, nil
}
