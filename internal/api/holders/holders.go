package holders

import (
	"net/http"

	"slots_backend/internal/api"
	"slots_backend/internal/api/middleware"
	"slots_backend/internal/converter"
	"slots_backend/internal/service"
	"slots_backend/pkg/resp"

	"github.com/charmbracelet/log"
)

type HandlerDeps struct {
	Serv   service.HoldersService
	Logger *log.Logger
}

type Handler struct {
	serv   service.HoldersService
	logger *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	reg, err := h.serv.InitHolderRegistry(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "init holder registry", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRegistryResponse(*reg))
}

// Register добавляет подписанта в реестр держателей
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	reg, err := h.serv.RegisterAsHolder(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "register holder", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRegistryResponse(*reg))
}

// Distribute выплачивает подписанту его долю пула
func (h *Handler) Distribute(w http.ResponseWriter, r *http.Request) {
	signer, _ := middleware.Signer(r.Context())

	res, err := h.serv.DistributeHolderRewards(r.Context(), signer)
	if err != nil {
		api.WriteError(w, h.logger, "distribute", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDistributionResponse(*res))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reg, err := h.serv.Registry(r.Context())
	if err != nil {
		api.WriteError(w, h.logger, "list holders", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRegistryResponse(*reg))
}
