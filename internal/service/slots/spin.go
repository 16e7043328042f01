package slots

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"
	"slots_backend/pkg/safemath"
	"slots_backend/pkg/xorshift"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Spin списывает ставку, продвигает генератор казны и начисляет выигрыш.
// Исход полностью определяется прошлым состоянием генератора: его может предсказать
// любой, кто видит состояние казны до включения запроса.
func (s *serv) Spin(ctx context.Context, signer ledger.Address) (*model.SpinResult, error) {
	var res *model.SpinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем казну с блокировкой
		treasury, err := s.loadTreasury(txCtx)
		if err != nil {
			return err
		}

		// Счёт выигрышей должен существовать до спина
		playerAddr := s.program.PlayerAccount(signer)
		if _, err := s.loadPlayer(txCtx, playerAddr); err != nil {
			return err
		}

		// 1. Счётчик спинов, переполнение допустимо
		treasury.SpinCount++

		// 2. Шаг генератора
		treasury.GeneratorState = xorshift.Next(treasury.GeneratorState)

		// 3-4. Уровень выигрыша
		winDecider := treasury.GeneratorState % model.WinDeciderModulo
		tier := model.ClassifyTier(winDecider)
		payout := tier.Payout(s.economy.BetAmount)

		// 5. Ставка списывается всегда
		err = s.ledger.Transfer(txCtx, signer, treasury.Address, s.economy.BetAmount)
		if err != nil {
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				return service.ErrInsufficientStakeFunds
			}
			return errors.Wrap(err, "transfer stake")
		}

		res = &model.SpinResult{
			ID:         uuid.New(),
			SpinNumber: treasury.SpinCount,
			WinDecider: winDecider,
			Tier:       tier,
			Bet:        s.economy.BetAmount,
			Payout:     payout,
		}

		// 6. Выигрыш: доля в пул держателей, остальное на счёт игрока
		if payout > 0 {
			holderReward := model.HolderReward(payout, s.economy.HolderRewardPercentage)
			userWinnings := payout - holderReward

			pool, err := safemath.Add(treasury.RewardPoolBalance, holderReward)
			if err != nil {
				return errors.Wrap(service.ErrOverflow, "reward pool")
			}

			if err := s.ensureSolvent(txCtx, treasury.Address, pool, userWinnings); err != nil {
				return err
			}

			treasury.RewardPoolBalance = pool
			err = s.ledger.Transfer(txCtx, treasury.Address, playerAddr, userWinnings)
			if err != nil {
				return errors.Wrap(err, "transfer winnings")
			}

			res.HolderReward = holderReward
			res.UserWinnings = userWinnings
		}
		res.RewardPool = treasury.RewardPoolBalance

		return s.treasuryRepo.UpdateTreasury(txCtx, treasury)
	})
	if err != nil {
		s.metrics.ObserveFailure("spin")
		return nil, err
	}

	s.metrics.ObserveSpin(res)
	s.logger.Info("spin",
		"number", res.SpinNumber,
		"decider", res.WinDecider,
		"tier", res.Tier,
		"player", signer,
		"winnings", res.UserWinnings,
		"pool", res.RewardPool,
	)

	return res, nil
}

// ensureSolvent проверяет, что после выплаты winnings в казне останутся депозит счёта и весь пул
func (s *serv) ensureSolvent(ctx context.Context, treasury ledger.Address, pool, winnings uint64) error {
	held, err := s.ledger.Balance(ctx, treasury)
	if err != nil {
		return err
	}

	need, err := safemath.Add(s.economy.ReservedMinimum, pool)
	if err == nil {
		need, err = safemath.Add(need, winnings)
	}
	if err != nil {
		return errors.Wrap(service.ErrOverflow, "treasury requirement")
	}

	if held < need {
		return service.ErrTreasuryUnderfunded
	}
	return nil
}

func (s *serv) loadTreasury(ctx context.Context) (*model.Treasury, error) {
	treasury, err := s.treasuryRepo.GetTreasury(ctx, s.program.Treasury())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotInitialized
		}
		return nil, errors.Wrap(err, "get treasury")
	}
	return treasury, nil
}

func (s *serv) loadPlayer(ctx context.Context, addr ledger.Address) (*model.PlayerAccount, error) {
	acc, err := s.playerRepo.GetPlayerAccount(ctx, addr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrPlayerAccountNotFound
		}
		return nil, errors.Wrap(err, "get player account")
	}
	return acc, nil
}
