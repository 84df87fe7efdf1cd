package security

import (
	"PortalPiloto/internal/api/config"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	if config.Cfg != nil && config.Cfg.Server.JWTSecret != "" {
		return []byte(config.Cfg.Server.JWTSecret)
	}
	return []byte("portal-do-piloto")
}

// GenerateToken gera um novo JWT
func GenerateToken(userID uint64, roles []string) (string, error) {
	expirationTime := time.Now().Add(JWTExpirationTime)

	claims := &UserClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "PortalPiloto",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", fmt.Errorf("falha ao assinar token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken valida o token e extrai as Claims
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	if err != nil {
		return nil, fmt.Errorf("falha ao analisar token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token inválido ou expirado")
	}

	return claims, nil
}

// ExtractSignature extrai a assinatura do token
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("formato de token incorreto")
	}
	return parts[2], nil
}
