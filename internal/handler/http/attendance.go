package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kelola-hr/leave-ledger-go/internal/domain/attendance"
	"github.com/kelola-hr/leave-ledger-go/internal/handler/http/response"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/jwt"
)

type AttendanceHandler struct {
	service attendance.AttendanceService
	logger  *slog.Logger
}

func NewAttendanceHandler(service attendance.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{service: service, logger: logger}
}

// CheckIn handles POST /api/v1/attendance/check-in
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := jwt.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	req.EmployeeID = employeeID

	resp, err := h.service.CheckIn(r.Context(), req)
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

// CheckOut handles POST /api/v1/attendance/check-out
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := jwt.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	req.EmployeeID = employeeID

	resp, err := h.service.CheckOut(r.Context(), req)
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetMyAttendance handles GET /api/v1/attendance
func (h *AttendanceHandler) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MyAttendanceFilter{}

	q := r.URL.Query()
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 && limit <= 100 {
			filter.Limit = limit
		}
	}

	resp, err := h.service.GetMyAttendance(r.Context(), filter)
	if err != nil {
		response.Error(r.Context(), w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
