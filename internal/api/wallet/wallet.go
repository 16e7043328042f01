package wallet

import (
	"net/http"

	"slots_backend/internal/api"
	"slots_backend/internal/api/dto/coin"
	"slots_backend/internal/api/middleware"
	"slots_backend/internal/converter"
	"slots_backend/internal/ledger"
	"slots_backend/pkg/req"
	"slots_backend/pkg/resp"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// MaxAirdrop предел одного начисления
const MaxAirdrop uint64 = 10_000_000_000

type HandlerDeps struct {
	Ledger ledger.Ledger
	Logger *log.Logger
}

type Handler struct {
	ledger ledger.Ledger
	logger *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{ledger: deps.Ledger, logger: deps.Logger}
}

// Balance баланс произвольного адреса леджера
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	addr, err := ledger.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := h.ledger.Exists(r.Context(), addr)
	if err != nil {
		api.WriteError(w, h.logger, "balance", err)
		return
	}
	balance, err := h.ledger.Balance(r.Context(), addr)
	if err != nil {
		api.WriteError(w, h.logger, "balance", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, coin.BalanceResponse{
		Address: addr.String(),
		Exists:  exists,
		Balance: converter.ToAmount(balance),
	})
}

// Airdrop начисляет монеты на кошелёк подписанта. Подключается только для леджера в памяти.
func (h *Handler) Airdrop(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[coin.AirdropRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Amount == 0 || payload.Amount > MaxAirdrop {
		resp.WriteError(w, http.StatusBadRequest, "amount out of range")
		return
	}
	signer, _ := middleware.Signer(r.Context())

	if err := h.ledger.Credit(r.Context(), signer, payload.Amount); err != nil {
		api.WriteError(w, h.logger, "airdrop", err)
		return
	}
	balance, err := h.ledger.Balance(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "airdrop", err)
		return
	}

	h.logger.Info("airdrop", "signer", signer, "amount", payload.Amount)
	resp.WriteJSONResponse(w, http.StatusOK, coin.BalanceResponse{
		Address: signer.String(),
		Exists:  true,
		Balance: converter.ToAmount(balance),
	})
}
