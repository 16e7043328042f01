package slots

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/service"

	"github.com/pkg/errors"
)

// Deposit пополняет банкролл казны с кошелька подписанта. Пул держателей не меняется.
func (s *serv) Deposit(ctx context.Context, signer ledger.Address, amount uint64) (*model.TreasuryState, error) {
	if amount == 0 {
		return nil, service.ErrInvalidAmount
	}

	var st *model.TreasuryState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		treasury, err := s.loadTreasury(txCtx)
		if err != nil {
			return err
		}

		if err := s.ledger.Transfer(txCtx, signer, treasury.Address, amount); err != nil {
			return errors.Wrap(err, "transfer deposit")
		}

		held, err := s.ledger.Balance(txCtx, treasury.Address)
		if err != nil {
			return err
		}
		st = &model.TreasuryState{Treasury: *treasury, Held: held}
		return nil
	})
	if err != nil {
		s.metrics.ObserveFailure("deposit")
		return nil, err
	}

	s.logger.Info("treasury deposit", "signer", signer, "amount", amount, "held", st.Held)
	return st, nil
}
