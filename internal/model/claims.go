package model

import "github.com/golang-jwt/jwt/v5"

// SignerClaims claims access токена, Subject - base58 адрес подписанта
type SignerClaims struct {
	jwt.RegisteredClaims
}
