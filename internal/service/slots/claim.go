package slots

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/service"
	"slots_backend/pkg/safemath"

	"github.com/pkg/errors"
)

// ClaimWinnings выводит всё сверх депозита со счёта выигрышей на кошелёк подписанта.
// Повторный вывод сразу после первого выводит 0 и не является ошибкой.
func (s *serv) ClaimWinnings(ctx context.Context, signer ledger.Address) (*model.ClaimResult, error) {
	var res *model.ClaimResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		playerAddr := s.program.PlayerAccount(signer)
		acc, err := s.loadPlayer(txCtx, playerAddr)
		if err != nil {
			return err
		}

		held, err := s.ledger.LockBalance(txCtx, playerAddr)
		if err != nil {
			return errors.Wrap(err, "player balance")
		}

		// Баланс ниже депозита означает нарушенный инвариант, а не пустой вывод
		claimable, err := safemath.Sub(held, s.economy.ReservedMinimum)
		if err != nil {
			return service.ErrReserveViolated
		}

		res = &model.ClaimResult{
			Claimed:      claimable,
			ClaimedTotal: acc.ClaimedTotal,
			Reserved:     s.economy.ReservedMinimum,
		}
		if claimable == 0 {
			return nil
		}

		claimedTotal, err := safemath.Add(acc.ClaimedTotal, claimable)
		if err != nil {
			return errors.Wrap(service.ErrOverflow, "claimed total")
		}

		if err := s.ledger.Transfer(txCtx, playerAddr, signer, claimable); err != nil {
			return errors.Wrap(err, "transfer claim")
		}
		if err := s.playerRepo.UpdateClaimedTotal(txCtx, playerAddr, claimedTotal); err != nil {
			return err
		}

		res.ClaimedTotal = claimedTotal
		return nil
	})
	if err != nil {
		s.metrics.ObserveFailure("claim_winnings")
		return nil, err
	}

	s.metrics.ObserveClaim(res)
	s.logger.Info("claimed winnings", "player", signer, "amount", res.Claimed, "total", res.ClaimedTotal)
	return res, nil
}
