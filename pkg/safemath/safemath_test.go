package safemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	v, err := Add(1000, 333)
	require.NoError(t, err)
	assert.Equal(t, uint64(1333), v)

	_, err = Add(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSub(t *testing.T) {
	v, err := Sub(1000, 333)
	require.NoError(t, err)
	assert.Equal(t, uint64(667), v)

	v, err = Sub(5, 5)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = Sub(1, 2)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestMul(t *testing.T) {
	v, err := Mul(100000000, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(200000000), v)

	_, err = Mul(math.MaxUint64/2+1, 2)
	assert.ErrorIs(t, err, ErrOverflow)
}
