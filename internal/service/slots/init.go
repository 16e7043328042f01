package slots

import (
	"context"
	"time"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/service"

	"github.com/pkg/errors"
)

// Init создаёт казну. Депозит счёта оплачивает подписант.
func (s *serv) Init(ctx context.Context, signer ledger.Address) (*model.Treasury, error) {
	var treasury *model.Treasury

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		addr := s.program.Treasury()
		if err := s.createAccount(txCtx, signer, addr); err != nil {
			return err
		}

		treasury = &model.Treasury{
			Address:           addr,
			SpinCount:         0,
			GeneratorState:    s.economy.InitialGeneratorState,
			RewardPoolBalance: 0,
			LastPayoutTime:    s.now(),
		}
		return s.treasuryRepo.CreateTreasury(txCtx, treasury)
	})
	if err != nil {
		s.metrics.ObserveFailure("init")
		return nil, err
	}

	s.logger.Info("initiated treasury", "address", treasury.Address, "signer", signer)
	return treasury, nil
}

// CreateUserVault создаёт счёт выигрышей подписанта
func (s *serv) CreateUserVault(ctx context.Context, signer ledger.Address) (*model.PlayerAccount, error) {
	var acc *model.PlayerAccount

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		addr := s.program.PlayerAccount(signer)
		if err := s.createAccount(txCtx, signer, addr); err != nil {
			return err
		}

		acc = &model.PlayerAccount{
			Address:      addr,
			Owner:        signer,
			ClaimedTotal: 0,
			CreatedAt:    s.now(),
		}
		return s.playerRepo.CreatePlayerAccount(txCtx, acc)
	})
	if err != nil {
		s.metrics.ObserveFailure("create_user_vault")
		return nil, err
	}

	s.logger.Info("initiated user vault", "address", acc.Address, "owner", signer)
	return acc, nil
}

// now время леджера с точностью до секунды
func (s *serv) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Second)
}

func (s *serv) createAccount(ctx context.Context, payer, addr ledger.Address) error {
	err := s.ledger.CreateAccount(ctx, payer, addr, s.economy.ReservedMinimum)
	switch {
	case errors.Is(err, ledger.ErrAccountExists):
		return service.ErrAlreadyInitialized
	case err != nil:
		return errors.Wrap(err, "create account")
	}
	return nil
}
