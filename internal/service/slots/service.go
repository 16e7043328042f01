package slots

import (
	"slots_backend/internal/ledger"
	"slots_backend/internal/metrics"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

type serv struct {
	economy      model.Economy
	program      ledger.Program
	ledger       repository.LedgerRepository
	treasuryRepo repository.TreasuryRepository
	playerRepo   repository.PlayerRepository
	txManager    trm.Manager
	clock        quartz.Clock
	logger       *log.Logger
	metrics      *metrics.Metrics
}

// Deps зависимости сервиса слотов
type Deps struct {
	Economy      model.Economy
	Program      ledger.Program
	Ledger       repository.LedgerRepository
	TreasuryRepo repository.TreasuryRepository
	PlayerRepo   repository.PlayerRepository
	TxManager    trm.Manager
	Clock        quartz.Clock
	Logger       *log.Logger
	Metrics      *metrics.Metrics
}

// NewSlotsService Создать сервис казны и спинов
func NewSlotsService(deps Deps) service.SlotsService {
	return &serv{
		economy:      deps.Economy,
		program:      deps.Program,
		ledger:       deps.Ledger,
		treasuryRepo: deps.TreasuryRepo,
		playerRepo:   deps.PlayerRepo,
		txManager:    deps.TxManager,
		clock:        deps.Clock,
		logger:       deps.Logger.With("component", "slots"),
		metrics:      deps.Metrics,
	}
}
