package service

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
)

type SlotsService interface {
	Init(ctx context.Context, signer ledger.Address) (*model.Treasury, error)
	CreateUserVault(ctx context.Context, signer ledger.Address) (*model.PlayerAccount, error)
	Spin(ctx context.Context, signer ledger.Address) (*model.SpinResult, error)
	ClaimWinnings(ctx context.Context, signer ledger.Address) (*model.ClaimResult, error)
	Deposit(ctx context.Context, signer ledger.Address, amount uint64) (*model.TreasuryState, error)
	TreasuryState(ctx context.Context) (*model.TreasuryState, error)
	PlayerState(ctx context.Context, owner ledger.Address) (*model.PlayerState, error)
}

type HoldersService interface {
	InitHolderRegistry(ctx context.Context, signer ledger.Address) (*model.HolderRegistry, error)
	RegisterAsHolder(ctx context.Context, signer ledger.Address) (*model.HolderRegistry, error)
	DistributeHolderRewards(ctx context.Context, signer ledger.Address) (*model.DistributionResult, error)
	Registry(ctx context.Context) (*model.HolderRegistry, error)
}

type AuthService interface {
	// Login проверяет подпись сообщения входа и выдаёт access токен
	Login(ctx context.Context, signer ledger.Address, message string, signature []byte) (accessToken string, err error)
	// Verify возвращает подписанта по access токену
	Verify(ctx context.Context, accessToken string) (ledger.Address, error)
}
