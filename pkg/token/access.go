package token

import (
	"errors"
	"fmt"
	"time"

	"slots_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken выпускает токен для subject, время выпуска берётся из now
func GenerateAccessToken(subject string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := model.SignerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifyToken проверяет подпись и срок действия относительно now
func VerifyToken(tokenStr string, secretKey []byte, now func() time.Time) (*model.SignerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SignerClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	}, jwt.WithTimeFunc(now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.SignerClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
