package api

import (
	"net/http"
	"testing"

	"slots_backend/internal/ledger"
	"slots_backend/internal/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		service.ErrInvalidAmount:                            http.StatusBadRequest,
		service.ErrInvalidToken:                             http.StatusUnauthorized,
		service.ErrNotRegisteredHolder:                      http.StatusForbidden,
		service.ErrPlayerAccountNotFound:                    http.StatusNotFound,
		service.ErrRegistryFull:                             http.StatusConflict,
		service.ErrPayoutTooEarly:                           http.StatusTooEarly,
		service.ErrInsufficientStakeFunds:                   http.StatusUnprocessableEntity,
		errors.Wrap(ledger.ErrInsufficientFunds, "deposit"): http.StatusUnprocessableEntity,
		service.ErrTreasuryUnderfunded:                      http.StatusServiceUnavailable,
		errors.Wrap(service.ErrOverflow, "reward pool"):     http.StatusInternalServerError,
		service.ErrReserveViolated:                          http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, Status(err), err.Error())
	}
}
