package leave

import (
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Type       string `json:"type"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequestRequest struct {
	ID              string  `json:"-"`
	Status          string  `json:"status"` // APPROVED or REJECTED
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            string  `json:"days"`
	Type            string  `json:"type"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedByID    *string `json:"approved_by_id,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

// DecisionResponse pairs the decided request with the ledger it posted
// against. Ledger is nil for rejections, which never touch it.
type DecisionResponse struct {
	Request LeaveRequestResponse   `json:"request"`
	Ledger  *ledger.LedgerResponse `json:"ledger,omitempty"`
}

// ToResponse maps a LeaveRequest entity to its response shape.
func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.DayCount().String(),
		Type:            r.Type,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApprovedByID:    r.ApprovedByID,
		RejectionReason: r.RejectionReason,
	}
}
