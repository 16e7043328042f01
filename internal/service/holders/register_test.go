package holders_test

import (
	"testing"
	"time"

	"slots_backend/internal/ledger"
	"slots_backend/internal/service"
	"slots_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitHolderRegistry(t *testing.T) {
	env := testutil.NewEnv(t)
	operator := env.Wallet(t, 0, 2*env.Economy.ReservedMinimum)

	reg, err := env.Holders.InitHolderRegistry(env.Ctx, operator)
	require.NoError(t, err)
	assert.Empty(t, reg.Holders)
	assert.Equal(t, env.Program.HolderRegistry(), reg.Address)
	assert.Equal(t, env.Economy.ReservedMinimum, env.Balance(t, reg.Address))

	_, err = env.Holders.InitHolderRegistry(env.Ctx, operator)
	assert.ErrorIs(t, err, service.ErrAlreadyInitialized)
}

func TestRegisterRequiresRegistry(t *testing.T) {
	env := testutil.NewEnv(t)
	holder := env.Wallet(t, 1, env.Economy.MinHolderBalance)

	_, err := env.Holders.RegisterAsHolder(env.Ctx, holder)
	assert.ErrorIs(t, err, service.ErrRegistryNotInitialized)
}

func TestRegisterMinimumBalance(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Bootstrap(t, 0)

	poor := env.Wallet(t, 1, env.Economy.MinHolderBalance-1)
	_, err := env.Holders.RegisterAsHolder(env.Ctx, poor)
	require.ErrorIs(t, err, service.ErrInsufficientHolderBalance)

	exact := env.Wallet(t, 2, env.Economy.MinHolderBalance)
	reg, err := env.Holders.RegisterAsHolder(env.Ctx, exact)
	require.NoError(t, err)
	assert.Len(t, reg.Holders, 1)
	assert.True(t, reg.Contains(exact))
	assert.False(t, reg.Contains(poor))
}

func TestRegisterIsIdempotent(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Bootstrap(t, 0)
	holder := env.Wallet(t, 1, env.Economy.MinHolderBalance)

	first, err := env.Holders.RegisterAsHolder(env.Ctx, holder)
	require.NoError(t, err)

	env.Clock.Advance(time.Hour).MustWait(env.Ctx)

	second, err := env.Holders.RegisterAsHolder(env.Ctx, holder)
	require.NoError(t, err)
	assert.Len(t, second.Holders, 1)
	assert.True(t, first.LastUpdated.Equal(second.LastUpdated))

	reg, err := env.Holders.Registry(env.Ctx)
	require.NoError(t, err)
	assert.Len(t, reg.Holders, 1)
}

func TestRegisterKeepsOrder(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Bootstrap(t, 0)

	a := env.Wallet(t, 3, env.Economy.MinHolderBalance)
	b := env.Wallet(t, 1, env.Economy.MinHolderBalance)
	c := env.Wallet(t, 2, env.Economy.MinHolderBalance)
	for _, h := range []ledger.Address{a, b, c} {
		_, err := env.Holders.RegisterAsHolder(env.Ctx, h)
		require.NoError(t, err)
	}

	reg, err := env.Holders.Registry(env.Ctx)
	require.NoError(t, err)
	assert.Equal(t, []ledger.Address{a, b, c}, reg.Holders)
}

func TestRegisterRegistryFull(t *testing.T) {
	env := testutil.NewEnv(t, testutil.WithMaxHolders(2))
	env.Bootstrap(t, 0)

	for id := byte(1); id <= 2; id++ {
		_, err := env.Holders.RegisterAsHolder(env.Ctx, env.Wallet(t, id, env.Economy.MinHolderBalance))
		require.NoError(t, err)
	}

	late := env.Wallet(t, 3, env.Economy.MinHolderBalance)
	_, err := env.Holders.RegisterAsHolder(env.Ctx, late)
	require.ErrorIs(t, err, service.ErrRegistryFull)

	reg, err := env.Holders.Registry(env.Ctx)
	require.NoError(t, err)
	assert.Len(t, reg.Holders, 2)
	assert.False(t, reg.Contains(late))
}
