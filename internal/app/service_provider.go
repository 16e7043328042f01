package app

import (
	"context"
	"os"
	"strings"

	authAPI "slots_backend/internal/api/auth"
	holdersAPI "slots_backend/internal/api/holders"
	slotsAPI "slots_backend/internal/api/slots"
	walletAPI "slots_backend/internal/api/wallet"
	"slots_backend/internal/config"
	"slots_backend/internal/config/env"
	"slots_backend/internal/ledger"
	"slots_backend/internal/metrics"
	"slots_backend/internal/repository"
	"slots_backend/internal/repository/holder_repo"
	"slots_backend/internal/repository/ledger_repo"
	"slots_backend/internal/repository/memory"
	"slots_backend/internal/repository/player_repo"
	"slots_backend/internal/repository/treasury_repo"
	"slots_backend/internal/service"
	"slots_backend/internal/service/auth"
	"slots_backend/internal/service/holders"
	"slots_backend/internal/service/slots"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const economyConfigPath = "config.yaml"

type ServiceProvider struct {
	// Configs
	pgConfig      config.PGConfig
	httpCfg       config.HTTPConfig
	metricsCfg    config.MetricsConfig
	jwtCfg        config.JWTConfig
	logCfg        config.LogConfig
	economyCfg    config.EconomyConfig

	// Ambient
	logger  *log.Logger
	clock   quartz.Clock
	metrics *metrics.Metrics

	// Database
	dbClient *pgxpool.Pool
	store    *memory.Store

	//TXManager
	txManager trm.Manager

	// Repositories
	ledgerRepo   repository.LedgerRepository
	treasuryRepo repository.TreasuryRepository
	playerRepo   repository.PlayerRepository
	holderRepo   repository.HolderRepository

	// Services
	authServ    service.AuthService
	slotsServ   service.SlotsService
	holdersServ service.HoldersService

	// Handlers
	authHand    *authAPI.Handler
	slotsHand   *slotsAPI.Handler
	holdersHand *holdersAPI.Handler
	walletHand  *walletAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		sp.pgConfig = env.NewPGConfig()
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) MetricsCfg() config.MetricsConfig {
	if sp.metricsCfg == nil {
		sp.metricsCfg = env.NewMetricsConfig()
	}
	return sp.metricsCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) EconomyCfg() config.EconomyConfig {
	if sp.economyCfg == nil {
		cfg, err := env.NewEconomyConfigFromYAML(economyConfigPath)
		if err != nil {
			panic("failed to get economy config: " + err.Error())
		}
		sp.economyCfg = cfg
	}
	return sp.economyCfg
}

func (sp *ServiceProvider) Logger() *log.Logger {
	if sp.logger == nil {
		level, err := log.ParseLevel(strings.ToLower(sp.LogCfg().Level()))
		if err != nil {
			level = log.InfoLevel
		}
		sp.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           level,
		})
	}
	return sp.logger
}

func (sp *ServiceProvider) Clock() quartz.Clock {
	if sp.clock == nil {
		sp.clock = quartz.NewReal()
	}
	return sp.clock
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.metrics = metrics.New(reg)
	}
	return sp.metrics
}

func (sp *ServiceProvider) Program() ledger.Program {
	return ledger.NewProgram(sp.EconomyCfg().ProgramID())
}

// InMemory леджер и записи живут в памяти процесса
func (sp *ServiceProvider) InMemory() bool {
	return !sp.PgConfig().Enabled()
}

func (sp *ServiceProvider) Store() *memory.Store {
	if sp.store == nil {
		sp.store = memory.NewStore()
	}
	return sp.store
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.InMemory() {
			sp.txManager = sp.Store().TxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		if sp.InMemory() {
			sp.ledgerRepo = sp.Store()
		} else {
			sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) TreasuryRepo(ctx context.Context) repository.TreasuryRepository {
	if sp.treasuryRepo == nil {
		if sp.InMemory() {
			sp.treasuryRepo = sp.Store()
		} else {
			sp.treasuryRepo = treasury_repo.NewTreasuryRepository(sp.DBClient(ctx))
		}
	}
	return sp.treasuryRepo
}

func (sp *ServiceProvider) PlayerRepo(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		if sp.InMemory() {
			sp.playerRepo = sp.Store()
		} else {
			sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
		}
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) HolderRepo(ctx context.Context) repository.HolderRepository {
	if sp.holderRepo == nil {
		if sp.InMemory() {
			sp.holderRepo = sp.Store()
		} else {
			sp.holderRepo = holder_repo.NewHolderRepository(sp.DBClient(ctx))
		}
	}
	return sp.holderRepo
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.JWTCfg(), sp.Clock(), sp.Logger())
	}
	return sp.authServ
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(slots.Deps{
			Economy:      sp.EconomyCfg().Economy(),
			Program:      sp.Program(),
			Ledger:       sp.LedgerRepo(ctx),
			TreasuryRepo: sp.TreasuryRepo(ctx),
			PlayerRepo:   sp.PlayerRepo(ctx),
			TxManager:    sp.TXManager(ctx),
			Clock:        sp.Clock(),
			Logger:       sp.Logger(),
			Metrics:      sp.Metrics(),
		})
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) HoldersService(ctx context.Context) service.HoldersService {
	if sp.holdersServ == nil {
		sp.holdersServ = holders.NewHoldersService(holders.Deps{
			Economy:      sp.EconomyCfg().Economy(),
			Program:      sp.Program(),
			Ledger:       sp.LedgerRepo(ctx),
			TreasuryRepo: sp.TreasuryRepo(ctx),
			PlayerRepo:   sp.PlayerRepo(ctx),
			HolderRepo:   sp.HolderRepo(ctx),
			TxManager:    sp.TXManager(ctx),
			Clock:        sp.Clock(),
			Logger:       sp.Logger(),
			Metrics:      sp.Metrics(),
		})
	}
	return sp.holdersServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:   sp.AuthService(),
			Logger: sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{
			Serv:    sp.SlotsService(ctx),
			Economy: sp.EconomyCfg().Economy(),
			Logger:  sp.Logger(),
		})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) HoldersHandler(ctx context.Context) *holdersAPI.Handler {
	if sp.holdersHand == nil {
		sp.holdersHand = holdersAPI.NewHandler(holdersAPI.HandlerDeps{
			Serv:   sp.HoldersService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.holdersHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Ledger: sp.LedgerRepo(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = NewRouter(RouterDeps{
			AuthServ:       sp.AuthService(),
			AuthHandler:    sp.AuthHandler(),
			SlotsHandler:   sp.SlotsHandler(ctx),
			HoldersHandler: sp.HoldersHandler(ctx),
			WalletHandler:  sp.WalletHandler(ctx),
			Airdrop:        sp.InMemory(),
		})
	}

	return sp.router
}

// Close освобождает пул соединений
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
