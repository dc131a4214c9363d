package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a PENDING request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request. Returns ErrLeaveRequestNotFound.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate loads the request under a row lock so the
	// PENDING-only guard holds against concurrent deciders.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateDecision persists the terminal status transition.
	UpdateDecision(ctx context.Context, request LeaveRequest) error

	// HasOverlapping reports whether the employee already has a
	// non-rejected request intersecting [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}

// LeaveService coordinates leave request lifecycle and approval.
type LeaveService interface {
	// CreateRequest files a PENDING request for the employee.
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Decide applies an APPROVED or REJECTED transition. Approval
	// merges the day count into the current period's ledger atomically
	// with the status flip and the balance cache write.
	Decide(ctx context.Context, req DecideLeaveRequestRequest, approverID string) (DecisionResponse, error)

	// GetRequest retrieves a single request by ID.
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
}
