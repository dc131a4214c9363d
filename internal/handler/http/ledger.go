package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/handler/http/response"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/validator"
)

type LedgerHandler struct {
	store  ledger.Store
	logger *slog.Logger
}

func NewLedgerHandler(store ledger.Store, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{store: store, logger: logger}
}

// Get handles GET /api/v1/ledgers/{employeeID}/{month}/{year}
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "invalid employee id")
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(r.Context(), w, h.logger, ledger.ErrInvalidPeriod)
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.Error(r.Context(), w, h.logger, ledger.ErrInvalidPeriod)
		return
	}

	l, err := h.store.Get(r.Context(), employeeID, ledger.Period{Month: month, Year: year})
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, ledger.ToResponse(l))
}
