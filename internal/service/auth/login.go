package auth

import (
	"context"
	"crypto/ed25519"
	"strconv"
	"strings"
	"time"

	"slots_backend/internal/ledger"
	"slots_backend/internal/service"
	"slots_backend/pkg/token"
)

// Login проверяет, что сообщение входа подписано ключом signer, не устарело и ещё не использовалось,
// и выдаёт access токен
func (s *serv) Login(ctx context.Context, signer ledger.Address, message string, signature []byte) (string, error) {
	// Верификация подписи: адрес и есть публичный ключ ed25519
	if len(signature) != ed25519.SignatureSize ||
		!ed25519.Verify(ed25519.PublicKey(signer.Bytes()), []byte(message), signature) {
		return "", service.ErrInvalidSignature
	}

	// Проверка времени в сообщении
	signedAt, err := parseLoginMessage(message)
	if err != nil {
		return "", err
	}
	now := s.clock.Now()
	if now.Sub(signedAt).Abs() > LoginWindow {
		return "", service.ErrStaleLogin
	}

	// Каждое подписанное сообщение обменивается на токен один раз
	if used, _ := s.usedLogins.ContainsOrAdd(signer.String()+":"+message, signedAt); used {
		return "", service.ErrLoginReplayed
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		signer.String(),
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration(),
		now)
	if err != nil {
		return "", err
	}

	s.logger.Debug("signer logged in", "signer", signer)
	return accessToken, nil
}

// Verify возвращает адрес подписанта из access токена
func (s *serv) Verify(ctx context.Context, accessToken string) (ledger.Address, error) {
	claims, err := token.VerifyToken(accessToken, s.jwtConfig.AccessTokenSecretKey(), func() time.Time { return s.clock.Now() })
	if err != nil {
		return ledger.Address{}, service.ErrInvalidToken
	}

	signer, err := ledger.ParseAddress(claims.Subject)
	if err != nil {
		return ledger.Address{}, service.ErrInvalidToken
	}
	return signer, nil
}

// LoginMessage сообщение входа, которое подписывает клиент
func LoginMessage(at time.Time) string {
	return LoginPrefix + strconv.FormatInt(at.Unix(), 10)
}

func parseLoginMessage(message string) (time.Time, error) {
	raw, ok := strings.CutPrefix(message, LoginPrefix)
	if !ok {
		return time.Time{}, service.ErrInvalidSignature
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, service.ErrInvalidSignature
	}
	return time.Unix(unix, 0), nil
}
