package ledger_repo

import (
	"context"
	"time"

	"slots_backend/internal/ledger"
	"slots_backend/internal/repository"
	"slots_backend/pkg/safemath"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// uniqueViolation код ошибки postgres при нарушении уникальности
const uniqueViolation = "23505"

const (
	table        = "ledger_accounts"
	colAddress   = "address"
	colBalance   = "balance"
	colReserve   = "reserve"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc       *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
}

// NewLedgerRepository леджер поверх postgres.
// Балансы uint64 хранятся в bigint побитово.
func NewLedgerRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.LedgerRepository {
	return &repo{
		dbc:       dbc,
		getter:    trmpgx.DefaultCtxGetter,
		txManager: txManager,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateAccount - создаёт счёт и переводит на него депозит плательщика
func (r *repo) CreateAccount(ctx context.Context, payer, addr ledger.Address, deposit uint64) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		exists, err := r.Exists(txCtx, addr)
		if err != nil {
			return err
		}
		if exists {
			return ledger.ErrAccountExists
		}

		// Списываем депозит с плательщика до создания счёта
		payerBalance, found, err := r.lockBalance(txCtx, payer)
		if err != nil {
			return err
		}
		if !found || payerBalance < deposit {
			return ledger.ErrInsufficientFunds
		}
		if err := r.setBalance(txCtx, payer, payerBalance-deposit); err != nil {
			return err
		}

		return r.insert(txCtx, addr, deposit, deposit)
	})
}

// Exists - проверяет существование счёта
func (r *repo) Exists(ctx context.Context, addr ledger.Address) (bool, error) {
	_, found, err := r.readBalance(ctx, addr, false)
	return found, err
}

// Balance - баланс счёта, 0 если счёта нет
func (r *repo) Balance(ctx context.Context, addr ledger.Address) (uint64, error) {
	balance, _, err := r.readBalance(ctx, addr, false)
	return balance, err
}

// LockBalance - баланс счёта с блокировкой строки до конца транзакции
func (r *repo) LockBalance(ctx context.Context, addr ledger.Address) (uint64, error) {
	balance, _, err := r.lockBalance(ctx, addr)
	return balance, err
}

// Transfer - перевод между счетами с блокировкой обеих строк
func (r *repo) Transfer(ctx context.Context, from, to ledger.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if from == to {
		return ledger.ErrSameAccount
	}

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		balances, err := r.lockBalances(txCtx, from, to)
		if err != nil {
			return err
		}

		fromAcc, ok := balances[from]
		if !ok {
			return ledger.ErrInsufficientFunds
		}
		toAcc, ok := balances[to]
		if !ok {
			return errors.Wrapf(ledger.ErrAccountNotFound, "recipient %s", to)
		}

		fromBalance, err := safemath.Sub(fromAcc.balance, amount)
		if err != nil {
			return ledger.ErrInsufficientFunds
		}
		// Депозит счёта программы не снимается
		if fromBalance < fromAcc.reserve {
			return errors.Wrapf(ledger.ErrInsufficientFunds, "%s below reserve", from)
		}
		toBalance, err := safemath.Add(toAcc.balance, amount)
		if err != nil {
			return err
		}

		if err := r.setBalance(txCtx, from, fromBalance); err != nil {
			return err
		}
		return r.setBalance(txCtx, to, toBalance)
	})
}

// Credit - внешнее пополнение кошелька
func (r *repo) Credit(ctx context.Context, addr ledger.Address, amount uint64) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, found, err := r.lockBalance(txCtx, addr)
		if err != nil {
			return err
		}
		if !found {
			return r.insert(txCtx, addr, amount, 0)
		}

		balance, err = safemath.Add(balance, amount)
		if err != nil {
			return err
		}
		return r.setBalance(txCtx, addr, balance)
	})
}

func (r *repo) lockBalance(ctx context.Context, addr ledger.Address) (uint64, bool, error) {
	return r.readBalance(ctx, addr, true)
}

func balanceQuery(addr ledger.Address, lock bool) sq.SelectBuilder {
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colAddress: addr.String()}).
		PlaceholderFormat(sq.Dollar)
	if lock {
		query = query.Suffix("FOR UPDATE")
	}
	return query
}

func (r *repo) readBalance(ctx context.Context, addr ledger.Address, lock bool) (uint64, bool, error) {
	sqlStr, args, err := balanceQuery(addr, lock).ToSql()
	if err != nil {
		return 0, false, err
	}

	var balance int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return uint64(balance), true, nil
}

type lockedAccount struct {
	balance uint64
	reserve uint64
}

func lockAccountsQuery(addrs ...ledger.Address) sq.SelectBuilder {
	keys := make([]string, 0, len(addrs))
	for _, a := range addrs {
		keys = append(keys, a.String())
	}

	return sq.Select(colAddress, colBalance, colReserve).
		From(table).
		Where(sq.Eq{colAddress: keys}).
		OrderBy(colAddress).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)
}

// lockBalances блокирует строки в порядке адресов, чтобы встречные переводы не вставали в дедлок
func (r *repo) lockBalances(ctx context.Context, addrs ...ledger.Address) (map[ledger.Address]lockedAccount, error) {
	sqlStr, args, err := lockAccountsQuery(addrs...).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make(map[ledger.Address]lockedAccount, len(addrs))
	for rows.Next() {
		var (
			key              string
			balance, reserve int64
		)
		if err := rows.Scan(&key, &balance, &reserve); err != nil {
			return nil, err
		}
		addr, err := ledger.ParseAddress(key)
		if err != nil {
			return nil, err
		}
		balances[addr] = lockedAccount{balance: uint64(balance), reserve: uint64(reserve)}
	}

	return balances, rows.Err()
}

func (r *repo) setBalance(ctx context.Context, addr ledger.Address, balance uint64) error {
	query := sq.Update(table).
		Set(colBalance, int64(balance)).
		Where(sq.Eq{colAddress: addr.String()}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.Wrapf(ledger.ErrAccountNotFound, "account %s", addr)
	}
	return nil
}

func (r *repo) insert(ctx context.Context, addr ledger.Address, balance, reserve uint64) error {
	query := sq.Insert(table).
		Columns(colAddress, colBalance, colReserve, colCreatedAt).
		Values(addr.String(), int64(balance), int64(reserve), time.Now().UTC()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return insertErr(err)
}

// insertErr переводит гонку двух вставок одного счёта в ErrAccountExists
func insertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ledger.ErrAccountExists
	}
	return err
}
