package auth

import (
	"net/http"

	"slots_backend/internal/api"
	dto "slots_backend/internal/api/dto/auth"
	"slots_backend/internal/ledger"
	"slots_backend/internal/service"
	"slots_backend/pkg/req"
	"slots_backend/pkg/resp"

	"github.com/charmbracelet/log"
	"github.com/mr-tron/base58"
)

type HandlerDeps struct {
	Serv   service.AuthService
	Logger *log.Logger
}

type Handler struct {
	serv   service.AuthService
	logger *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Login проверяет подписанное сообщение входа и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	signer, err := ledger.ParseAddress(requestBody.Address)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	signature, err := base58.Decode(requestBody.Signature)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid signature encoding")
		return
	}

	accessToken, err := h.serv.Login(r.Context(), signer, requestBody.Message, signature)
	if err != nil {
		api.WriteError(w, h.logger, "login", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{AccessToken: accessToken})
}
