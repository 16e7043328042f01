package memory

import (
	"context"
	"sync"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txKey struct{}

type state struct {
	balances   map[ledger.Address]uint64
	reserves   map[ledger.Address]uint64
	treasuries map[ledger.Address]model.Treasury
	players    map[ledger.Address]model.PlayerAccount
	registries map[ledger.Address]model.HolderRegistry
}

func newState() state {
	return state{
		balances:   make(map[ledger.Address]uint64),
		reserves:   make(map[ledger.Address]uint64),
		treasuries: make(map[ledger.Address]model.Treasury),
		players:    make(map[ledger.Address]model.PlayerAccount),
		registries: make(map[ledger.Address]model.HolderRegistry),
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.reserves {
		c.reserves[k] = v
	}
	for k, v := range s.treasuries {
		c.treasuries[k] = v
	}
	for k, v := range s.players {
		c.players[k] = v
	}
	for k, v := range s.registries {
		c.registries[k] = v.Clone()
	}
	return c
}

// Store хранилище в памяти: леджер и все записи программы.
// Каждая транзакция выполняется под общей блокировкой, при ошибке состояние откатывается.
type Store struct {
	mu   sync.Mutex
	data state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

// TxManager менеджер транзакций поверх хранилища
func (s *Store) TxManager() trm.Manager {
	return &txManager{store: s}
}

// run выполняет fn в текущей транзакции или в новой
func (s *Store) run(ctx context.Context, fn func() error) error {
	if inTx(ctx) {
		return fn()
	}
	return s.do(ctx, func(context.Context) error { return fn() })
}

func (s *Store) do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	snapshot := s.data.clone()
	committed := false
	defer func() {
		if !committed {
			s.data = snapshot
		}
		s.mu.Unlock()
	}()

	if err = fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		return err
	}
	committed = true
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

type txManager struct {
	store *Store
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.store.do(ctx, fn)
}

// DoWithSettings настройки игнорируются: транзакции в памяти всегда сериализуемы
func (m *txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.store.do(ctx, fn)
}
