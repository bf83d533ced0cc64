package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// SessionService issues signed table-session tokens so clients can prove
// their seat at a scoring table when rejoining.
type SessionService struct {
	secret string
	issuer string
}

// SessionTokenTTL bounds how long a rejoin token stays valid.
const SessionTokenTTL = time.Hour

func NewSessionService(secret, issuer string) *SessionService {
	return &SessionService{
		secret: secret,
		issuer: issuer,
	}
}

// GenerateToken signs a session token binding the user to a seat and round.
func (s *SessionService) GenerateToken(user string, seat int, roundID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("session service is nil")
	}
	if user == "" {
		return "", fmt.Errorf("user is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("session config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss":  s.issuer,
		"sub":  user,
		"exp":  time.Now().Add(SessionTokenTTL).Unix(),
		"seat": seat,
		"rid":  roundID,
		"jti":  fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseToken verifies the signature and returns the token's claims.
func (s *SessionService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("session token is invalid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("session token claims have unexpected shape")
	}
	return claims, nil
}
