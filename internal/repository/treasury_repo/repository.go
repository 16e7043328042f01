package treasury_repo

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	table             = "treasury"
	colAddress        = "address"
	colSpinCount      = "spin_count"
	colGeneratorState = "generator_state"
	colRewardPool     = "reward_pool_balance"
	colLastPayoutTime = "last_payout_time"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTreasuryRepository(dbc *pgxpool.Pool) repository.TreasuryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTreasury - создаёт запись казны
func (r *repo) CreateTreasury(ctx context.Context, t *model.Treasury) error {
	query := sq.Insert(table).
		Columns(colAddress, colSpinCount, colGeneratorState, colRewardPool, colLastPayoutTime).
		Values(t.Address.String(), int32(t.SpinCount), int64(t.GeneratorState), int64(t.RewardPoolBalance), t.LastPayoutTime).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetTreasury - читает казну с блокировкой строки (FOR UPDATE)
func (r *repo) GetTreasury(ctx context.Context, addr ledger.Address) (*model.Treasury, error) {
	query := sq.Select(colSpinCount, colGeneratorState, colRewardPool, colLastPayoutTime).
		From(table).
		Where(sq.Eq{colAddress: addr.String()}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		spinCount      int32
		generatorState int64
		rewardPool     int64
	)
	t := &model.Treasury{Address: addr}
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&spinCount, &generatorState, &rewardPool, &t.LastPayoutTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	t.SpinCount = uint16(spinCount)
	t.GeneratorState = uint64(generatorState)
	t.RewardPoolBalance = uint64(rewardPool)

	return t, nil
}

// UpdateTreasury - сохраняет изменяемые поля казны
func (r *repo) UpdateTreasury(ctx context.Context, t *model.Treasury) error {
	query := sq.Update(table).
		Set(colSpinCount, int32(t.SpinCount)).
		Set(colGeneratorState, int64(t.GeneratorState)).
		Set(colRewardPool, int64(t.RewardPoolBalance)).
		Set(colLastPayoutTime, t.LastPayoutTime).
		Where(sq.Eq{colAddress: t.Address.String()}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
