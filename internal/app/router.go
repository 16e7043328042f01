package app

import (
	authAPI "slots_backend/internal/api/auth"
	holdersAPI "slots_backend/internal/api/holders"
	"slots_backend/internal/api/middleware"
	slotsAPI "slots_backend/internal/api/slots"
	walletAPI "slots_backend/internal/api/wallet"
	"slots_backend/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterDeps struct {
	AuthServ       service.AuthService
	AuthHandler    *authAPI.Handler
	SlotsHandler   *slotsAPI.Handler
	HoldersHandler *holdersAPI.Handler
	WalletHandler  *walletAPI.Handler
	// Airdrop маршрут начисления монет, только для леджера в памяти
	Airdrop bool
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	// Публичные endpoints
	r.Post("/auth/login", deps.AuthHandler.Login)
	r.Get("/vault/state", deps.SlotsHandler.TreasuryState)
	r.Get("/holders", deps.HoldersHandler.List)
	r.Get("/ledger/balance/{address}", deps.WalletHandler.Balance)

	// Операции подписанта
	r.Group(func(rr chi.Router) {
		rr.Use(middleware.Auth(deps.AuthServ))

		rr.Post("/vault/init", deps.SlotsHandler.Init)
		rr.Post("/vault/spin", deps.SlotsHandler.Spin)
		rr.Post("/vault/deposit", deps.SlotsHandler.Deposit)

		rr.Post("/player/vault", deps.SlotsHandler.CreateUserVault)
		rr.Post("/player/claim", deps.SlotsHandler.Claim)
		rr.Get("/player/state", deps.SlotsHandler.PlayerState)

		rr.Post("/holders/init", deps.HoldersHandler.Init)
		rr.Post("/holders/register", deps.HoldersHandler.Register)
		rr.Post("/holders/distribute", deps.HoldersHandler.Distribute)

		if deps.Airdrop {
			rr.Post("/ledger/airdrop", deps.WalletHandler.Airdrop)
		}
	})

	return r
}
