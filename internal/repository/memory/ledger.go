package memory

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/pkg/safemath"

	"github.com/pkg/errors"
)

func (s *Store) CreateAccount(ctx context.Context, payer, addr ledger.Address, deposit uint64) error {
	return s.run(ctx, func() error {
		if _, ok := s.data.balances[addr]; ok {
			return ledger.ErrAccountExists
		}
		payerBalance, ok := s.data.balances[payer]
		if !ok || payerBalance < deposit {
			return ledger.ErrInsufficientFunds
		}
		s.data.balances[payer] = payerBalance - deposit
		s.data.balances[addr] = deposit
		s.data.reserves[addr] = deposit
		return nil
	})
}

func (s *Store) Exists(ctx context.Context, addr ledger.Address) (bool, error) {
	var ok bool
	err := s.run(ctx, func() error {
		_, ok = s.data.balances[addr]
		return nil
	})
	return ok, err
}

func (s *Store) Balance(ctx context.Context, addr ledger.Address) (uint64, error) {
	var balance uint64
	err := s.run(ctx, func() error {
		balance = s.data.balances[addr]
		return nil
	})
	return balance, err
}

// LockBalance транзакции в памяти и так сериализованы
func (s *Store) LockBalance(ctx context.Context, addr ledger.Address) (uint64, error) {
	return s.Balance(ctx, addr)
}

func (s *Store) Transfer(ctx context.Context, from, to ledger.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if from == to {
		return ledger.ErrSameAccount
	}
	return s.run(ctx, func() error {
		fromBalance, err := safemath.Sub(s.data.balances[from], amount)
		if err != nil {
			return ledger.ErrInsufficientFunds
		}
		if fromBalance < s.data.reserves[from] {
			return errors.Wrapf(ledger.ErrInsufficientFunds, "%s below reserve", from)
		}
		toBalance, ok := s.data.balances[to]
		if !ok {
			return errors.Wrapf(ledger.ErrAccountNotFound, "recipient %s", to)
		}
		toBalance, err = safemath.Add(toBalance, amount)
		if err != nil {
			return err
		}
		s.data.balances[from] = fromBalance
		s.data.balances[to] = toBalance
		return nil
	})
}

func (s *Store) Credit(ctx context.Context, addr ledger.Address, amount uint64) error {
	return s.run(ctx, func() error {
		balance, err := safemath.Add(s.data.balances[addr], amount)
		if err != nil {
			return err
		}
		s.data.balances[addr] = balance
		return nil
	})
}
