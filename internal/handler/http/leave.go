package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/leave"
	"github.com/kelola-hr/leave-ledger-go/internal/handler/http/response"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/jwt"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/validator"
)

type LeaveHandler struct {
	service leave.LeaveService
	logger  *slog.Logger
}

func NewLeaveHandler(service leave.LeaveService, logger *slog.Logger) *LeaveHandler {
	return &LeaveHandler{service: service, logger: logger}
}

// Create handles POST /api/v1/leave-requests
func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := jwt.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	req.EmployeeID = employeeID

	resp, err := h.service.CreateRequest(r.Context(), req)
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/leave-requests/{id}
func (h *LeaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "invalid leave request id")
		return
	}

	resp, err := h.service.GetRequest(r.Context(), id)
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Decide handles PATCH /api/v1/leave-requests/{id}
func (h *LeaveHandler) Decide(w http.ResponseWriter, r *http.Request) {
	approverID, err := jwt.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "invalid leave request id")
		return
	}

	var req leave.DecideLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	req.ID = id

	resp, err := h.service.Decide(r.Context(), req, approverID)
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
