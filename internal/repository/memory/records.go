package memory

import (
	"context"

	"slots_backend/internal/ledger"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	"github.com/pkg/errors"
)

var errRecordExists = errors.New("record already exists")

var (
	_ repository.LedgerRepository   = (*Store)(nil)
	_ repository.TreasuryRepository = (*Store)(nil)
	_ repository.PlayerRepository   = (*Store)(nil)
	_ repository.HolderRepository   = (*Store)(nil)
)

func (s *Store) CreateTreasury(ctx context.Context, t *model.Treasury) error {
	return s.run(ctx, func() error {
		if _, ok := s.data.treasuries[t.Address]; ok {
			return errRecordExists
		}
		s.data.treasuries[t.Address] = *t
		return nil
	})
}

func (s *Store) GetTreasury(ctx context.Context, addr ledger.Address) (*model.Treasury, error) {
	var t model.Treasury
	err := s.run(ctx, func() error {
		var ok bool
		t, ok = s.data.treasuries[addr]
		if !ok {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) UpdateTreasury(ctx context.Context, t *model.Treasury) error {
	return s.run(ctx, func() error {
		if _, ok := s.data.treasuries[t.Address]; !ok {
			return repository.ErrNotFound
		}
		s.data.treasuries[t.Address] = *t
		return nil
	})
}

func (s *Store) CreatePlayerAccount(ctx context.Context, acc *model.PlayerAccount) error {
	return s.run(ctx, func() error {
		if _, ok := s.data.players[acc.Address]; ok {
			return errRecordExists
		}
		s.data.players[acc.Address] = *acc
		return nil
	})
}

func (s *Store) GetPlayerAccount(ctx context.Context, addr ledger.Address) (*model.PlayerAccount, error) {
	var acc model.PlayerAccount
	err := s.run(ctx, func() error {
		var ok bool
		acc, ok = s.data.players[addr]
		if !ok {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *Store) UpdateClaimedTotal(ctx context.Context, addr ledger.Address, claimedTotal uint64) error {
	return s.run(ctx, func() error {
		acc, ok := s.data.players[addr]
		if !ok {
			return repository.ErrNotFound
		}
		acc.ClaimedTotal = claimedTotal
		s.data.players[addr] = acc
		return nil
	})
}

func (s *Store) CreateRegistry(ctx context.Context, r *model.HolderRegistry) error {
	return s.run(ctx, func() error {
		if _, ok := s.data.registries[r.Address]; ok {
			return errRecordExists
		}
		s.data.registries[r.Address] = r.Clone()
		return nil
	})
}

func (s *Store) GetRegistry(ctx context.Context, addr ledger.Address) (*model.HolderRegistry, error) {
	var reg model.HolderRegistry
	err := s.run(ctx, func() error {
		stored, ok := s.data.registries[addr]
		if !ok {
			return repository.ErrNotFound
		}
		reg = stored.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *Store) AddHolder(ctx context.Context, r *model.HolderRegistry, holder ledger.Address) error {
	return s.run(ctx, func() error {
		stored, ok := s.data.registries[r.Address]
		if !ok {
			return repository.ErrNotFound
		}
		stored.Holders = append(stored.Clone().Holders, holder)
		stored.LastUpdated = r.LastUpdated
		s.data.registries[r.Address] = stored
		r.Holders = append(r.Holders, holder)
		return nil
	})
}
