package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type JWTManager struct {
	Secret          []byte
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AccessClaims struct {
	UserID    string   `json:"sub"`
	Roles     []string `json:"roles"`
	TokenType string   `json:"typ"`
	jwt.RegisteredClaims
}

// IssueTokenPair signs an access and a refresh token for the user. Both
// carry the same claims apart from the type tag and expiry.
func (m JWTManager) IssueTokenPair(userID string, roles []string) (access string, refresh string, err error) {
	access, err = m.sign(userID, roles, "access", m.accessTTL())
	if err != nil {
		return "", "", err
	}
	refresh, err = m.sign(userID, roles, "refresh", m.refreshTTL())
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (m JWTManager) sign(userID string, roles []string, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID:    userID,
		Roles:     roles,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

// ParseAccessToken validates the signature and expiry and rejects refresh
// tokens presented as access tokens.
func (m JWTManager) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid || claims.TokenType != "access" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m JWTManager) accessTTL() time.Duration {
	if m.AccessTokenTTL == 0 {
		return 15 * time.Minute
	}
	return m.AccessTokenTTL
}

func (m JWTManager) refreshTTL() time.Duration {
	if m.RefreshTokenTTL == 0 {
		return 24 * time.Hour
	}
	return m.RefreshTokenTTL
}
