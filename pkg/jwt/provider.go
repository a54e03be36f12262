package jwt

import (
	"errors"
	"time"

	"getmovies/account"
	"getmovies/auth"

	"github.com/golang-jwt/jwt"
)

// SessionProvider signs and verifies HS256 session tokens. The token itself
// is the only session state the system holds.
type SessionProvider struct {
	Secret string
	TTL    time.Duration
}

func NewSessionProvider(secret string, ttl time.Duration) *SessionProvider {
	return &SessionProvider{
		Secret: secret,
		TTL:    ttl,
	}
}

func (p *SessionProvider) GenerateSessionToken(a account.Account) (string, error) {
	claims := jwt.MapClaims{
		"user_id": a.ID,
		"email":   a.Email,
		"type":    "session",
		"exp":     time.Now().Add(p.TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(p.Secret))
}

func (p *SessionProvider) ParseSessionToken(sessionToken string) (auth.Identity, error) {
	token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(p.Secret), nil
	})
	if err != nil || !token.Valid {
		return auth.Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Identity{}, errors.New("invalid token claims")
	}
	if err := claims.Valid(); err != nil {
		return auth.Identity{}, errors.New("token expired")
	}

	if claimType, ok := claims["type"].(string); !ok || claimType != "session" {
		return auth.Identity{}, errors.New("invalid token type")
	}

	accountID, ok := claims["user_id"].(string)
	if !ok || accountID == "" {
		return auth.Identity{}, errors.New("invalid account id")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return auth.Identity{}, errors.New("invalid email")
	}

	return auth.Identity{
		AccountID: accountID,
		Email:     email,
	}, nil
}
