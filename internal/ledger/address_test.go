package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressIsDeterministic(t *testing.T) {
	p := NewProgram("slots")
	assert.Equal(t, p.Treasury(), NewProgram("slots").Treasury())
	assert.NotEqual(t, p.Treasury(), p.HolderRegistry())
	assert.NotEqual(t, p.Treasury(), NewProgram("other").Treasury())

	var alice, bob Address
	alice[0], bob[0] = 1, 2
	assert.NotEqual(t, p.PlayerAccount(alice), p.PlayerAccount(bob))
	assert.Equal(t, p.PlayerAccount(alice), p.PlayerAccount(alice))
}

func TestDeriveAddressSeedBoundaries(t *testing.T) {
	a := DeriveAddress("p", []byte("ab"), []byte("c"))
	b := DeriveAddress("p", []byte("a"), []byte("bc"))
	assert.NotEqual(t, a, b)
}

func TestParseAddressRoundTrip(t *testing.T) {
	addr := NewProgram("slots").Treasury()
	parsed, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	_, err = ParseAddress("0OIl")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseAddress("3yZe7d")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
