package holders

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/service"

	"github.com/pkg/errors"
)

// InitHolderRegistry создаёт пустой реестр держателей
func (s *serv) InitHolderRegistry(ctx context.Context, signer ledger.Address) (*model.HolderRegistry, error) {
	var reg *model.HolderRegistry

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		addr := s.program.HolderRegistry()
		err := s.ledger.CreateAccount(txCtx, signer, addr, s.economy.ReservedMinimum)
		switch {
		case errors.Is(err, ledger.ErrAccountExists):
			return service.ErrAlreadyInitialized
		case err != nil:
			return errors.Wrap(err, "create account")
		}

		reg = &model.HolderRegistry{
			Address:     addr,
			Holders:     []ledger.Address{},
			LastUpdated: s.now(),
		}
		return s.holderRepo.CreateRegistry(txCtx, reg)
	})
	if err != nil {
		s.metrics.ObserveFailure("init_holder_registry")
		return nil, err
	}

	s.logger.Info("initiated holder registry", "address", reg.Address, "signer", signer)
	return reg, nil
}

// RegisterAsHolder добавляет подписанта в реестр, если его баланс не меньше минимального.
// Повторная регистрация ничего не меняет. Баланс проверяется только здесь, при выплатах повторно не проверяется.
func (s *serv) RegisterAsHolder(ctx context.Context, signer ledger.Address) (*model.HolderRegistry, error) {
	var (
		reg      *model.HolderRegistry
		inserted bool
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		reg, err = s.loadRegistry(txCtx)
		if err != nil {
			return err
		}

		balance, err := s.ledger.Balance(txCtx, signer)
		if err != nil {
			return errors.Wrap(err, "signer balance")
		}
		if balance < s.economy.MinHolderBalance {
			return service.ErrInsufficientHolderBalance
		}

		if reg.Contains(signer) {
			return nil
		}
		if len(reg.Holders) >= s.economy.MaxHolders {
			return service.ErrRegistryFull
		}

		reg.LastUpdated = s.now()
		if err := s.holderRepo.AddHolder(txCtx, reg, signer); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		s.metrics.ObserveFailure("register_as_holder")
		return nil, err
	}

	if inserted {
		s.metrics.SetHolders(len(reg.Holders))
		s.logger.Info("registered holder", "holder", signer, "holders", len(reg.Holders))
	}
	return reg, nil
}
