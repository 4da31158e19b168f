package jwtauth

import (
	"time"

	"github.com/dxbsouq/souq-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

type manager struct {
	jwtConfig config.JWT
}

func NewManager(jwtConfig config.JWT) *manager {
	return &manager{
		jwtConfig: jwtConfig,
	}
}

type customClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

func (m *manager) GenerateToken(userID int) (string, error) {
	claims := customClaims{
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.jwtConfig.AccessTokenTTL)),
		},
		userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(m.jwtConfig.Secret))
}

func (m *manager) ParseToken(tokenStr string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &customClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(m.jwtConfig.Secret), nil
	})
	if err != nil || !token.Valid {
		return 0, err
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}

	return claims.UserID, nil
}
