package slots

import (
	"net/http"

	"slots_backend/internal/api"
	dto "slots_backend/internal/api/dto/vault"
	"slots_backend/internal/api/middleware"
	"slots_backend/internal/converter"
	"slots_backend/internal/model"
	"slots_backend/internal/service"
	"slots_backend/pkg/req"
	"slots_backend/pkg/resp"

	"github.com/charmbracelet/log"
)

type HandlerDeps struct {
	Serv    service.SlotsService
	Economy model.Economy
	Logger  *log.Logger
}

type Handler struct {
	serv    service.SlotsService
	economy model.Economy
	logger  *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, economy: deps.Economy, logger: deps.Logger}
}

// Init создаёт казну, депозит счёта платит подписант
func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	treasury, err := h.serv.Init(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "init", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated,
		converter.ToTreasuryResponse(model.TreasuryState{Treasury: *treasury, Held: h.economy.ReservedMinimum}, h.economy.PayoutInterval))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	signer, _ := middleware.Signer(r.Context())

	st, err := h.serv.Deposit(r.Context(), signer, payload.Amount)
	if err != nil {
		api.WriteError(w, h.logger, "deposit", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTreasuryResponse(*st, h.economy.PayoutInterval))
}

func (h *Handler) TreasuryState(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.TreasuryState(r.Context())
	if err != nil {
		api.WriteError(w, h.logger, "treasury state", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTreasuryResponse(*st, h.economy.PayoutInterval))
}

// CreateUserVault создаёт счёт выигрышей подписанта
func (h *Handler) CreateUserVault(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	acc, err := h.serv.CreateUserVault(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "create user vault", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPlayerVaultResponse(*acc))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	result, err := h.serv.Spin(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	result, err := h.serv.ClaimWinnings(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "claim", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*result))
}

func (h *Handler) PlayerState(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	st, err := h.serv.PlayerState(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "player state", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerStateResponse(*st))
}
