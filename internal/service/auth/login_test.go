package auth_test

import (
	"context"
	"crypto/ed25519"
	"io"
	"testing"
	"time"

	"slots_backend/internal/ledger"
	"slots_backend/internal/service"
	"slots_backend/internal/service/auth"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte        { return []byte("test-secret") }
func (jwtConfig) AccessTokenDuration() time.Duration { return 15 * time.Minute }

func newSigner(t *testing.T) (ledger.Address, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	addr, err := ledger.AddressFromBytes(pub)
	require.NoError(t, err)
	return addr, priv
}

func TestLoginAndVerify(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	serv := auth.NewService(jwtConfig{}, clock, log.New(io.Discard))
	signer, key := newSigner(t)

	msg := auth.LoginMessage(clock.Now())
	tok, err := serv.Login(ctx, signer, msg, ed25519.Sign(key, []byte(msg)))
	require.NoError(t, err)

	got, err := serv.Verify(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, signer, got)

	// Токен истекает по часам сервиса
	clock.Advance(16 * time.Minute).MustWait(ctx)
	_, err = serv.Verify(ctx, tok)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestLoginRejects(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	serv := auth.NewService(jwtConfig{}, clock, log.New(io.Discard))
	signer, key := newSigner(t)
	other, _ := newSigner(t)

	fresh := auth.LoginMessage(clock.Now())
	stale := auth.LoginMessage(clock.Now().Add(-auth.LoginWindow - time.Second))

	cases := []struct {
		name    string
		signer  ledger.Address
		message string
		sig     []byte
		err     error
	}{
		{"wrong key", other, fresh, ed25519.Sign(key, []byte(fresh)), service.ErrInvalidSignature},
		{"tampered message", signer, fresh + "0", ed25519.Sign(key, []byte(fresh)), service.ErrInvalidSignature},
		{"short signature", signer, fresh, []byte{1, 2, 3}, service.ErrInvalidSignature},
		{"bad format", signer, "hello", ed25519.Sign(key, []byte("hello")), service.ErrInvalidSignature},
		{"stale", signer, stale, ed25519.Sign(key, []byte(stale)), service.ErrStaleLogin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := serv.Login(ctx, tc.signer, tc.message, tc.sig)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := serv.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestLoginMessageIsSingleUse(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	serv := auth.NewService(jwtConfig{}, clock, log.New(io.Discard))
	signer, key := newSigner(t)
	other, otherKey := newSigner(t)

	msg := auth.LoginMessage(clock.Now())
	sig := ed25519.Sign(key, []byte(msg))
	_, err := serv.Login(ctx, signer, msg, sig)
	require.NoError(t, err)

	// Тот же подписанный запрос внутри окна
	clock.Advance(time.Minute).MustWait(ctx)
	_, err = serv.Login(ctx, signer, msg, sig)
	assert.ErrorIs(t, err, service.ErrLoginReplayed)

	// Такое же сообщение другого ключа принимается
	_, err = serv.Login(ctx, other, msg, ed25519.Sign(otherKey, []byte(msg)))
	require.NoError(t, err)

	// Новое сообщение того же ключа тоже
	next := auth.LoginMessage(clock.Now())
	_, err = serv.Login(ctx, signer, next, ed25519.Sign(key, []byte(next)))
	require.NoError(t, err)
}
