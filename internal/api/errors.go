package api

import (
	"errors"
	"net/http"

	"slots_backend/internal/ledger"
	"slots_backend/internal/service"
	"slots_backend/pkg/resp"

	"github.com/charmbracelet/log"
)

// Status HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidSignature),
		errors.Is(err, service.ErrStaleLogin),
		errors.Is(err, service.ErrLoginReplayed),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotRegisteredHolder):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotInitialized),
		errors.Is(err, service.ErrRegistryNotInitialized),
		errors.Is(err, service.ErrPlayerAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyInitialized),
		errors.Is(err, service.ErrRegistryFull):
		return http.StatusConflict
	case errors.Is(err, service.ErrPayoutTooEarly):
		return http.StatusTooEarly
	case errors.Is(err, service.ErrInsufficientStakeFunds),
		errors.Is(err, service.ErrInsufficientHolderBalance),
		errors.Is(err, service.ErrNoRewardsToDistribute),
		errors.Is(err, service.ErrNoHoldersRegistered),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrTreasuryUnderfunded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет ошибку сервиса клиенту. Внутренние ошибки логируются и не раскрываются.
func WriteError(w http.ResponseWriter, logger *log.Logger, op string, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" failed", "err", err)
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
