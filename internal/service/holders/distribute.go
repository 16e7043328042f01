package holders

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"
	"slots_backend/pkg/safemath"

	"github.com/pkg/errors"
)

// DistributeHolderRewards выплачивает подписанту равную долю текущего пула.
// Делитель - число держателей на момент вызова. Остаток от деления остаётся в пуле,
// таймер выплат перезапускается только когда пул опустел полностью.
func (s *serv) DistributeHolderRewards(ctx context.Context, signer ledger.Address) (*model.DistributionResult, error) {
	var res *model.DistributionResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		now := s.now()

		treasury, err := s.treasuryRepo.GetTreasury(txCtx, s.program.Treasury())
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrNotInitialized
			}
			return errors.Wrap(err, "get treasury")
		}

		reg, err := s.loadRegistry(txCtx)
		if err != nil {
			return err
		}

		// Проверки в порядке: интервал, пул, реестр, членство
		if now.Before(treasury.LastPayoutTime.Add(s.economy.PayoutInterval)) {
			return service.ErrPayoutTooEarly
		}
		if treasury.RewardPoolBalance == 0 {
			return service.ErrNoRewardsToDistribute
		}
		holderCount := len(reg.Holders)
		if holderCount == 0 {
			return service.ErrNoHoldersRegistered
		}
		if !reg.Contains(signer) {
			return service.ErrNotRegisteredHolder
		}

		// Доля выплачивается на счёт выигрышей держателя
		payee := s.program.PlayerAccount(signer)
		if _, err := s.playerRepo.GetPlayerAccount(txCtx, payee); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrPlayerAccountNotFound
			}
			return errors.Wrap(err, "get player account")
		}

		share := treasury.RewardPoolBalance / uint64(holderCount)

		pool, err := safemath.Sub(treasury.RewardPoolBalance, share)
		if err != nil {
			return errors.Wrap(service.ErrOverflow, "reward pool")
		}

		if err := s.ledger.Transfer(txCtx, treasury.Address, payee, share); err != nil {
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				return service.ErrTreasuryUnderfunded
			}
			return errors.Wrap(err, "transfer share")
		}

		treasury.RewardPoolBalance = pool
		if pool == 0 {
			treasury.LastPayoutTime = now
		}
		if err := s.treasuryRepo.UpdateTreasury(txCtx, treasury); err != nil {
			return err
		}

		res = &model.DistributionResult{
			Holder:        signer,
			Share:         share,
			HolderCount:   holderCount,
			RemainingPool: pool,
			CycleClosed:   pool == 0,
			PaidAt:        now,
		}
		return nil
	})
	if err != nil {
		s.metrics.ObserveFailure("distribute_holder_rewards")
		return nil, err
	}

	s.metrics.ObserveDistribution(res)
	s.logger.Info("distributed holder reward",
		"holder", signer,
		"share", res.Share,
		"holders", res.HolderCount,
		"remaining", res.RemainingPool,
	)
	return res, nil
}
