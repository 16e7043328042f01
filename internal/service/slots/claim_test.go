package slots_test

import (
	"sync"
	"testing"

	"slots_backend/internal/model"
	"slots_backend/internal/service"
	"slots_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimWinnings(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Bootstrap(t, bankroll)
	player := env.Player(t, 1, env.Economy.BetAmount)
	env.UpdateTreasury(t, func(tr *model.Treasury) { tr.GeneratorState = 11 })

	spin, err := env.Slots.Spin(env.Ctx, player)
	require.NoError(t, err)
	require.Equal(t, uint64(45_000_000), spin.UserWinnings)

	res, err := env.Slots.ClaimWinnings(env.Ctx, player)
	require.NoError(t, err)
	assert.Equal(t, uint64(45_000_000), res.Claimed)
	assert.Equal(t, uint64(45_000_000), res.ClaimedTotal)
	assert.Equal(t, env.Economy.ReservedMinimum, res.Reserved)

	assert.Equal(t, uint64(45_000_000), env.Balance(t, player))
	assert.Equal(t, env.Economy.ReservedMinimum, env.Balance(t, env.Program.PlayerAccount(player)))

	// Повторный вывод ничего не переводит
	again, err := env.Slots.ClaimWinnings(env.Ctx, player)
	require.NoError(t, err)
	assert.Zero(t, again.Claimed)
	assert.Equal(t, uint64(45_000_000), again.ClaimedTotal)
	assert.Equal(t, uint64(45_000_000), env.Balance(t, player))
}

func TestClaimAccumulatesClaimedTotal(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Bootstrap(t, bankroll)
	player := env.Player(t, 1, 2*env.Economy.BetAmount)
	vault := env.Program.PlayerAccount(player)

	for _, prev := range []uint64{3, 18} {
		env.UpdateTreasury(t, func(tr *model.Treasury) { tr.GeneratorState = prev })
		_, err := env.Slots.Spin(env.Ctx, player)
		require.NoError(t, err)
		_, err = env.Slots.ClaimWinnings(env.Ctx, player)
		require.NoError(t, err)
	}

	st, err := env.Slots.PlayerState(env.Ctx, player)
	require.NoError(t, err)
	assert.Equal(t, uint64(270_000_000), st.Account.ClaimedTotal)
	assert.Equal(t, vault, st.Account.Address)
	assert.Equal(t, env.Economy.ReservedMinimum, st.Held)
	assert.Zero(t, st.Claimable)
	assert.Equal(t, uint64(270_000_000), st.WalletBalance)
}

func TestClaimWithoutAccount(t *testing.T) {
	env := testutil.NewEnv(t)
	stranger := env.Wallet(t, 9, 0)

	_, err := env.Slots.ClaimWinnings(env.Ctx, stranger)
	assert.ErrorIs(t, err, service.ErrPlayerAccountNotFound)
}

func TestClaimReserveViolated(t *testing.T) {
	env := testutil.NewEnv(t)
	owner := env.Wallet(t, 1, 0)
	payer := env.Wallet(t, 2, env.Economy.ReservedMinimum)
	vault := env.Program.PlayerAccount(owner)

	// Счёт создан в обход программы с депозитом меньше обязательного
	require.NoError(t, env.Store.CreateAccount(env.Ctx, payer, vault, env.Economy.ReservedMinimum-1))
	require.NoError(t, env.Store.CreatePlayerAccount(env.Ctx, &model.PlayerAccount{Address: vault, Owner: owner}))

	_, err := env.Slots.ClaimWinnings(env.Ctx, owner)
	assert.ErrorIs(t, err, service.ErrReserveViolated)
	assert.Equal(t, env.Economy.ReservedMinimum-1, env.Balance(t, vault))
}

func TestConcurrentClaimsPayOnce(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Bootstrap(t, bankroll)
	player := env.Player(t, 1, env.Economy.BetAmount)
	env.UpdateTreasury(t, func(tr *model.Treasury) { tr.GeneratorState = 11 })

	spin, err := env.Slots.Spin(env.Ctx, player)
	require.NoError(t, err)
	require.NotZero(t, spin.UserWinnings)

	const workers = 8
	claimed := make([]uint64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := env.Slots.ClaimWinnings(env.Ctx, player)
			if err == nil {
				claimed[i] = res.Claimed
			}
		}(i)
	}
	wg.Wait()

	var total uint64
	for _, c := range claimed {
		total += c
	}
	assert.Equal(t, spin.UserWinnings, total)
	assert.Equal(t, spin.UserWinnings, env.Balance(t, player))
	assert.Equal(t, env.Economy.ReservedMinimum, env.Balance(t, env.Program.PlayerAccount(player)))

	st, err := env.Slots.PlayerState(env.Ctx, player)
	require.NoError(t, err)
	assert.Equal(t, spin.UserWinnings, st.Account.ClaimedTotal)
}

func TestDeposit(t *testing.T) {
	env := testutil.NewEnv(t)
	operator := env.Bootstrap(t, 0)
	require.NoError(t, env.Store.Credit(env.Ctx, operator, 500))

	st, err := env.Slots.Deposit(env.Ctx, operator, 500)
	require.NoError(t, err)
	assert.Equal(t, env.Economy.ReservedMinimum+500, st.Held)
	assert.Zero(t, st.Treasury.RewardPoolBalance)

	_, err = env.Slots.Deposit(env.Ctx, operator, 0)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)

	_, err = env.Slots.Deposit(env.Ctx, operator, 1)
	assert.Error(t, err)
	assert.Equal(t, env.Economy.ReservedMinimum+500, env.Balance(t, env.Program.Treasury()))
}

func TestTreasuryState(t *testing.T) {
	env := testutil.NewEnv(t)

	_, err := env.Slots.TreasuryState(env.Ctx)
	require.ErrorIs(t, err, service.ErrNotInitialized)

	env.Bootstrap(t, bankroll)
	st, err := env.Slots.TreasuryState(env.Ctx)
	require.NoError(t, err)
	assert.Equal(t, env.Program.Treasury(), st.Treasury.Address)
	assert.Equal(t, env.Economy.ReservedMinimum+bankroll, st.Held)
}
