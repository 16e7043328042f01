package holder_repo

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
	registryTable  = "holder_registry"
	colAddress     = "address"
	colLastUpdated = "last_updated"

	membersTable = "holder_registry_members"
	colRegistry  = "registry"
	colPosition  = "position"
	colHolder    = "holder"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHolderRepository(dbc *pgxpool.Pool) repository.HolderRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateRegistry - создаёт пустой реестр держателей
func (r *repo) CreateRegistry(ctx context.Context, reg *model.HolderRegistry) error {
	query := sq.Insert(registryTable).
		Columns(colAddress, colLastUpdated).
		Values(reg.Address.String(), reg.LastUpdated).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetRegistry - читает реестр (с блокировкой) и список держателей в порядке добавления
func (r *repo) GetRegistry(ctx context.Context, addr ledger.Address) (*model.HolderRegistry, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	query := sq.Select(colLastUpdated).
		From(registryTable).
		Where(sq.Eq{colAddress: addr.String()}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	reg := &model.HolderRegistry{Address: addr}
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&reg.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	// Держатели в порядке вставки
	membersQuery := sq.Select(colHolder).
		From(membersTable).
		Where(sq.Eq{colRegistry: addr.String()}).
		OrderBy(colPosition).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = membersQuery.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		holder, err := ledger.ParseAddress(key)
		if err != nil {
			return nil, err
		}
		reg.Holders = append(reg.Holders, holder)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reg, nil
}

// AddHolder - добавляет держателя в конец реестра и сохраняет reg.LastUpdated
func (r *repo) AddHolder(ctx context.Context, reg *model.HolderRegistry, holder ledger.Address) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	insertQuery := sq.Insert(membersTable).
		Columns(colRegistry, colPosition, colHolder).
		Values(reg.Address.String(), len(reg.Holders), holder.String()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := insertQuery.ToSql()
	if err != nil {
		return err
	}
	if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	updateQuery := sq.Update(registryTable).
		Set(colLastUpdated, reg.LastUpdated).
		Where(sq.Eq{colAddress: reg.Address.String()}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = updateQuery.ToSql()
	if err != nil {
		return err
	}
	if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	reg.Holders = append(reg.Holders, holder)
	return nil
}
