// Package testutil собирает сервисы поверх хранилища в памяти для тестов.
package testutil

import (
	"context"
	"io"
	"testing"

	"slots_backend/internal/ledger"
	"slots_backend/internal/metrics"
	"slots_backend/internal/model"
	"slots_backend/internal/repository/memory"
	"slots_backend/internal/service"
	"slots_backend/internal/service/holders"
	"slots_backend/internal/service/slots"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// Env тестовое окружение: хранилище, часы и оба сервиса
type Env struct {
	Ctx     context.Context
	Store   *memory.Store
	Clock   *quartz.Mock
	Economy model.Economy
	Program ledger.Program
	Metrics *metrics.Metrics
	Slots   service.SlotsService
	Holders service.HoldersService
}

type Option func(*model.Economy)

func WithMaxHolders(n int) Option {
	return func(e *model.Economy) { e.MaxHolders = n }
}

func NewEnv(t *testing.T, opts ...Option) *Env {
	t.Helper()

	eco := model.DefaultEconomy()
	for _, o := range opts {
		o(&eco)
	}

	store := memory.NewStore()
	clock := quartz.NewMock(t)
	logger := log.New(io.Discard)
	m := metrics.New(prometheus.NewRegistry())
	program := ledger.NewProgram("slots-test")

	env := &Env{
		Ctx:     context.Background(),
		Store:   store,
		Clock:   clock,
		Economy: eco,
		Program: program,
		Metrics: m,
	}
	env.Slots = slots.NewSlotsService(slots.Deps{
		Economy:      eco,
		Program:      program,
		Ledger:       store,
		TreasuryRepo: store,
		PlayerRepo:   store,
		TxManager:    store.TxManager(),
		Clock:        clock,
		Logger:       logger,
		Metrics:      m,
	})
	env.Holders = holders.NewHoldersService(holders.Deps{
		Economy:      eco,
		Program:      program,
		Ledger:       store,
		TreasuryRepo: store,
		PlayerRepo:   store,
		HolderRepo:   store,
		TxManager:    store.TxManager(),
		Clock:        clock,
		Logger:       logger,
		Metrics:      m,
	})
	return env
}

// Wallet создаёт кошелёк с балансом
func (e *Env) Wallet(t *testing.T, id byte, balance uint64) ledger.Address {
	t.Helper()
	var a ledger.Address
	a[0], a[31] = 0xAA, id
	require.NoError(t, e.Store.Credit(e.Ctx, a, balance))
	return a
}

// Player создаёт кошелёк и счёт выигрышей; на кошельке остаётся balance
func (e *Env) Player(t *testing.T, id byte, balance uint64) ledger.Address {
	t.Helper()
	a := e.Wallet(t, id, balance+e.Economy.ReservedMinimum)
	_, err := e.Slots.CreateUserVault(e.Ctx, a)
	require.NoError(t, err)
	return a
}

// Bootstrap создаёт казну и реестр и пополняет банкролл на bankroll
func (e *Env) Bootstrap(t *testing.T, bankroll uint64) ledger.Address {
	t.Helper()
	operator := e.Wallet(t, 0, 2*e.Economy.ReservedMinimum+bankroll)
	_, err := e.Slots.Init(e.Ctx, operator)
	require.NoError(t, err)
	_, err = e.Holders.InitHolderRegistry(e.Ctx, operator)
	require.NoError(t, err)
	if bankroll > 0 {
		_, err = e.Slots.Deposit(e.Ctx, operator, bankroll)
		require.NoError(t, err)
	}
	return operator
}

func (e *Env) Treasury(t *testing.T) *model.Treasury {
	t.Helper()
	tr, err := e.Store.GetTreasury(e.Ctx, e.Program.Treasury())
	require.NoError(t, err)
	return tr
}

// UpdateTreasury меняет запись казны в обход сервиса
func (e *Env) UpdateTreasury(t *testing.T, fn func(*model.Treasury)) {
	t.Helper()
	tr := e.Treasury(t)
	fn(tr)
	require.NoError(t, e.Store.UpdateTreasury(e.Ctx, tr))
}

func (e *Env) Balance(t *testing.T, a ledger.Address) uint64 {
	t.Helper()
	b, err := e.Store.Balance(e.Ctx, a)
	require.NoError(t, err)
	return b
}
