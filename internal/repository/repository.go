package repository

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"

	"github.com/pkg/errors"
)

// ErrNotFound запись не найдена
var ErrNotFound = errors.New("record not found")

// LedgerRepository подложка хранения стоимости
type LedgerRepository interface {
	ledger.Ledger
}

type TreasuryRepository interface {
	CreateTreasury(ctx context.Context, t *model.Treasury) error
	// GetTreasury читает казну и блокирует её до конца транзакции
	GetTreasury(ctx context.Context, addr ledger.Address) (*model.Treasury, error)
	UpdateTreasury(ctx context.Context, t *model.Treasury) error
}

type PlayerRepository interface {
	CreatePlayerAccount(ctx context.Context, acc *model.PlayerAccount) error
	// GetPlayerAccount читает счёт игрока и блокирует его до конца транзакции,
	// поэтому выводы одного игрока выполняются по очереди
	GetPlayerAccount(ctx context.Context, addr ledger.Address) (*model.PlayerAccount, error)
	UpdateClaimedTotal(ctx context.Context, addr ledger.Address, claimedTotal uint64) error
}

type HolderRepository interface {
	CreateRegistry(ctx context.Context, r *model.HolderRegistry) error
	// GetRegistry читает реестр и блокирует его до конца транзакции
	GetRegistry(ctx context.Context, addr ledger.Address) (*model.HolderRegistry, error)
	// AddHolder добавляет держателя в конец списка и сохраняет r.LastUpdated
	AddHolder(ctx context.Context, r *model.HolderRegistry, holder ledger.Address) error
}
