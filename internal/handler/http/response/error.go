package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kelola-hr/leave-ledger-go/internal/domain/attendance"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/employee"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/leave"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/user"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/validator"
)

// Error maps a domain error to its HTTP status and writes the error
// envelope. Unknown errors become an opaque 500 after logging; only
// domain sentinels leak their message to the client.
func Error(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		write(w, http.StatusUnprocessableEntity, Envelope{
			Success: false,
			Message: "validation failed",
			Errors:  validationErrs.ToMap(),
		})
		return
	}

	status, ok := statusOf(err)
	if !ok {
		logger.ErrorContext(ctx, "unhandled error", slog.String("error", err.Error()))
		write(w, http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "internal server error",
		})
		return
	}

	write(w, status, Envelope{Success: false, Message: err.Error()})
}

func statusOf(err error) (int, bool) {
	switch {
	case errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrLeaveRequestNotFound),
		errors.Is(err, ledger.ErrLedgerNotFound):
		return http.StatusNotFound, true

	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrCheckOutBeforeCheckIn),
		errors.Is(err, leave.ErrAlreadyDecided),
		errors.Is(err, leave.ErrOverlappingLeave):
		return http.StatusConflict, true

	case errors.Is(err, leave.ErrNotAuthorized),
		errors.Is(err, user.ErrManagerAccessRequired):
		return http.StatusForbidden, true

	case errors.Is(err, ledger.ErrInvalidPeriod):
		return http.StatusBadRequest, true
	}

	return 0, false
}
