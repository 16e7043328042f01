package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Amount uint64 `json:"amount"`
}

func TestDecode(t *testing.T) {
	p, err := Decode[payload](strings.NewReader(`{"amount": 42}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), p.Amount)

	_, err = Decode[payload](strings.NewReader(`{"amount": 1, "extra": true}`))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader(`{"amount": -1}`))
	assert.Error(t, err)
}
