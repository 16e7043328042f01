package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken(t *testing.T) {
	secret := []byte("secret")
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tok, err := GenerateAccessToken("holder", secret, time.Hour, issued)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret, func() time.Time { return issued.Add(30 * time.Minute) })
	require.NoError(t, err)
	assert.Equal(t, "holder", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	_, err = VerifyToken(tok, secret, func() time.Time { return issued.Add(2 * time.Hour) })
	assert.Error(t, err)

	_, err = VerifyToken(tok, []byte("other"), func() time.Time { return issued })
	assert.Error(t, err)
}
