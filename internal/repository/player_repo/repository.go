package player_repo

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
	table           = "player_accounts"
	colAddress      = "address"
	colOwner        = "owner"
	colClaimedTotal = "claimed_total"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreatePlayerAccount - создаёт запись счёта игрока
func (r *repo) CreatePlayerAccount(ctx context.Context, acc *model.PlayerAccount) error {
	query := sq.Insert(table).
		Columns(colAddress, colOwner, colClaimedTotal, colCreatedAt).
		Values(acc.Address.String(), acc.Owner.String(), int64(acc.ClaimedTotal), acc.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func selectAccountQuery(addr ledger.Address) sq.SelectBuilder {
	return sq.Select(colOwner, colClaimedTotal, colCreatedAt).
		From(table).
		Where(sq.Eq{colAddress: addr.String()}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)
}

// GetPlayerAccount - получение счёта игрока по его адресу с блокировкой строки
func (r *repo) GetPlayerAccount(ctx context.Context, addr ledger.Address) (*model.PlayerAccount, error) {
	sqlStr, args, err := selectAccountQuery(addr).ToSql()
	if err != nil {
		return nil, err
	}

	var (
		owner        string
		claimedTotal int64
	)
	acc := &model.PlayerAccount{Address: addr}
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&owner, &claimedTotal, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	acc.Owner, err = ledger.ParseAddress(owner)
	if err != nil {
		return nil, err
	}
	acc.ClaimedTotal = uint64(claimedTotal)

	return acc, nil
}

// UpdateClaimedTotal - обновляет сумму всех выводов
func (r *repo) UpdateClaimedTotal(ctx context.Context, addr ledger.Address, claimedTotal uint64) error {
	query := sq.Update(table).
		Set(colClaimedTotal, int64(claimedTotal)).
		Where(sq.Eq{colAddress: addr.String()}).
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
