package memory

import (
	"context"
	"sync"
	"testing"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(b byte) ledger.Address {
	var a ledger.Address
	a[0] = b
	return a
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice, bob := addr(1), addr(2)

	require.NoError(t, s.Credit(ctx, alice, 100))
	require.NoError(t, s.Credit(ctx, bob, 0))

	require.NoError(t, s.Transfer(ctx, alice, bob, 40))
	assertBalance(t, s, alice, 60)
	assertBalance(t, s, bob, 40)

	assert.ErrorIs(t, s.Transfer(ctx, alice, bob, 61), ledger.ErrInsufficientFunds)
	assert.ErrorIs(t, s.Transfer(ctx, alice, addr(9), 1), ledger.ErrAccountNotFound)
	assert.ErrorIs(t, s.Transfer(ctx, alice, alice, 1), ledger.ErrSameAccount)
	assert.NoError(t, s.Transfer(ctx, alice, addr(9), 0))
	assertBalance(t, s, alice, 60)
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	payer, acc := addr(1), addr(2)

	assert.ErrorIs(t, s.CreateAccount(ctx, payer, acc, 10), ledger.ErrInsufficientFunds)

	require.NoError(t, s.Credit(ctx, payer, 25))
	require.NoError(t, s.CreateAccount(ctx, payer, acc, 10))
	assertBalance(t, s, payer, 15)
	assertBalance(t, s, acc, 10)

	assert.ErrorIs(t, s.CreateAccount(ctx, payer, acc, 10), ledger.ErrAccountExists)
	assertBalance(t, s, payer, 15)
}

func TestTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice, bob, reg := addr(1), addr(2), addr(3)
	require.NoError(t, s.Credit(ctx, alice, 100))
	require.NoError(t, s.Credit(ctx, bob, 0))
	require.NoError(t, s.CreateRegistry(ctx, &model.HolderRegistry{Address: reg}))

	boom := errors.New("boom")
	err := s.TxManager().Do(ctx, func(txCtx context.Context) error {
		require.NoError(t, s.Transfer(txCtx, alice, bob, 70))
		r, err := s.GetRegistry(txCtx, reg)
		require.NoError(t, err)
		require.NoError(t, s.AddHolder(txCtx, r, alice))

		// Вложенная транзакция присоединяется к внешней
		require.NoError(t, s.TxManager().Do(txCtx, func(ctx context.Context) error {
			return s.Transfer(ctx, alice, bob, 30)
		}))
		assertBalanceCtx(t, txCtx, s, alice, 0)
		return boom
	})
	require.ErrorIs(t, err, boom)

	assertBalance(t, s, alice, 100)
	assertBalance(t, s, bob, 0)
	r, err := s.GetRegistry(ctx, reg)
	require.NoError(t, err)
	assert.Empty(t, r.Holders)
}

func TestTxSerializesConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	src, dst := addr(1), addr(2)
	require.NoError(t, s.Credit(ctx, src, 1000))
	require.NoError(t, s.Credit(ctx, dst, 0))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.TxManager().Do(ctx, func(txCtx context.Context) error {
				balance, err := s.Balance(txCtx, src)
				if err != nil {
					return err
				}
				if balance < 30 {
					return ledger.ErrInsufficientFunds
				}
				return s.Transfer(txCtx, src, dst, 30)
			})
		}()
	}
	wg.Wait()

	// 33 перевода по 30 укладываются в 1000, остаток 10
	assertBalance(t, s, src, 10)
	assertBalance(t, s, dst, 990)
}

func TestRecordsAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tr := &model.Treasury{Address: addr(1), GeneratorState: 7}
	require.NoError(t, s.CreateTreasury(ctx, tr))

	tr.GeneratorState = 8
	got, err := s.GetTreasury(ctx, addr(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.GeneratorState)
}

func assertBalance(t *testing.T, s *Store, a ledger.Address, want uint64) {
	t.Helper()
	assertBalanceCtx(t, context.Background(), s, a, want)
}

func assertBalanceCtx(t *testing.T, ctx context.Context, s *Store, a ledger.Address, want uint64) {
	t.Helper()
	got, err := s.Balance(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTransferKeepsAccountReserve(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	payer, vault, wallet := addr(1), addr(2), addr(3)
	require.NoError(t, s.Credit(ctx, payer, 100))
	require.NoError(t, s.Credit(ctx, wallet, 0))
	require.NoError(t, s.CreateAccount(ctx, payer, vault, 40))
	require.NoError(t, s.Transfer(ctx, payer, vault, 25))

	// Снять можно только то, что сверх депозита
	assert.ErrorIs(t, s.Transfer(ctx, vault, wallet, 26), ledger.ErrInsufficientFunds)
	require.NoError(t, s.Transfer(ctx, vault, wallet, 25))
	assertBalance(t, s, vault, 40)
	assert.ErrorIs(t, s.Transfer(ctx, vault, wallet, 1), ledger.ErrInsufficientFunds)

	// У кошелька минимума нет
	require.NoError(t, s.Transfer(ctx, payer, wallet, 35))
	assertBalance(t, s, payer, 0)
}
