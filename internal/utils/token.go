package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xyscco/easy-finances/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateToken issues a signed bearer token for the given user. The token
// carries the user id as its subject and expires after the configured TTL.
func GenerateToken(userID uuid.UUID) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	return GenerateTokenWithTTL(userID, time.Duration(cfg.TokenExpireMinutes)*time.Minute)
}

func GenerateTokenWithTTL(userID uuid.UUID, ttl time.Duration) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyToken checks signature and expiry and returns the subject user id.
// Every failure mode (garbage input, wrong key, wrong method, missing subject,
// expired token) comes back as an error, never a panic.
func VerifyToken(tokenString string) (uuid.UUID, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return uuid.Nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return uuid.Nil, fmt.Errorf("token has no subject")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	return userID, nil
}

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is required")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", fmt.Errorf("bearer token not found")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
