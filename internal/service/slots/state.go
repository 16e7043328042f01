package slots

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
)

// TreasuryState текущее состояние казны
func (s *serv) TreasuryState(ctx context.Context) (*model.TreasuryState, error) {
	var st *model.TreasuryState

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		treasury, err := s.loadTreasury(txCtx)
		if err != nil {
			return err
		}
		held, err := s.ledger.Balance(txCtx, treasury.Address)
		if err != nil {
			return err
		}
		st = &model.TreasuryState{Treasury: *treasury, Held: held}
		return nil
	})

	return st, err
}

// PlayerState состояние счёта выигрышей и кошелька игрока
func (s *serv) PlayerState(ctx context.Context, owner ledger.Address) (*model.PlayerState, error) {
	var st *model.PlayerState

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		acc, err := s.loadPlayer(txCtx, s.program.PlayerAccount(owner))
		if err != nil {
			return err
		}
		held, err := s.ledger.Balance(txCtx, acc.Address)
		if err != nil {
			return err
		}
		wallet, err := s.ledger.Balance(txCtx, owner)
		if err != nil {
			return err
		}

		st = &model.PlayerState{Account: *acc, Held: held, WalletBalance: wallet}
		if held > s.economy.ReservedMinimum {
			st.Claimable = held - s.economy.ReservedMinimum
		}
		return nil
	})

	return st, err
}
