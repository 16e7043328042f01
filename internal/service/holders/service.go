package holders

import (
	"context"
	"time"

	"slots_backend/internal/ledger"
	"slots_backend/internal/metrics"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/pkg/errors"
)

type serv struct {
	economy      model.Economy
	program      ledger.Program
	ledger       repository.LedgerRepository
	treasuryRepo repository.TreasuryRepository
	playerRepo   repository.PlayerRepository
	holderRepo   repository.HolderRepository
	txManager    trm.Manager
	clock        quartz.Clock
	logger       *log.Logger
	metrics      *metrics.Metrics
}

type Deps struct {
	Economy      model.Economy
	Program      ledger.Program
	Ledger       repository.LedgerRepository
	TreasuryRepo repository.TreasuryRepository
	PlayerRepo   repository.PlayerRepository
	HolderRepo   repository.HolderRepository
	TxManager    trm.Manager
	Clock        quartz.Clock
	Logger       *log.Logger
	Metrics      *metrics.Metrics
}

// NewHoldersService Создать сервис реестра держателей и выплат из пула
func NewHoldersService(deps Deps) service.HoldersService {
	return &serv{
		economy:      deps.Economy,
		program:      deps.Program,
		ledger:       deps.Ledger,
		treasuryRepo: deps.TreasuryRepo,
		playerRepo:   deps.PlayerRepo,
		holderRepo:   deps.HolderRepo,
		txManager:    deps.TxManager,
		clock:        deps.Clock,
		logger:       deps.Logger.With("component", "holders"),
		metrics:      deps.Metrics,
	}
}

func (s *serv) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Second)
}

func (s *serv) loadRegistry(ctx context.Context) (*model.HolderRegistry, error) {
	reg, err := s.holderRepo.GetRegistry(ctx, s.program.HolderRegistry())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrRegistryNotInitialized
		}
		return nil, errors.Wrap(err, "get holder registry")
	}
	return reg, nil
}

// Registry текущий список держателей
func (s *serv) Registry(ctx context.Context) (*model.HolderRegistry, error) {
	var reg *model.HolderRegistry
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		reg, err = s.loadRegistry(txCtx)
		return err
	})
	return reg, err
}
