// Package leave implements the leave approval coordinator. Approval is
// the only path that converts a request into ledger movement, and it
// does so in one transaction with the status flip so a request can
// never be charged twice or approved without being charged.
package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelola-hr/leave-ledger-go/internal/domain/employee"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/leave"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/notifier"
	"github.com/kelola-hr/leave-ledger-go/internal/repository/postgresql"
)

type leaveService struct {
	db           *database.DB
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	ledgerStore  ledger.Store
	notifier     notifier.Notifier
	logger       *slog.Logger

	// now is swappable for tests
	now func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	ledgerStore ledger.Store,
	n notifier.Notifier,
	logger *slog.Logger,
) leave.LeaveService {
	return &leaveService{
		db:           db,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		ledgerStore:  ledgerStore,
		notifier:     n,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *leaveService) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	if _, err := s.employeeRepo.GetOrCreate(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	overlapping, err := s.leaveRepo.HasOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Type:       req.Type,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave request filed",
		slog.String("leave_request_id", created.ID),
		slog.String("employee_id", created.EmployeeID),
		slog.String("days", created.DayCount().String()),
	)

	return leave.ToResponse(created), nil
}

// Decide implements leave.LeaveService. Approval posts the day count
// against the period containing the decision date, not the leave dates.
func (s *leaveService) Decide(ctx context.Context, req leave.DecideLeaveRequestRequest, approverID string) (leave.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecisionResponse{}, err
	}

	// Pre-checks outside the transaction keep the lock window short.
	// Both are re-verified under the row lock below.
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.DecisionResponse{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.DecisionResponse{}, leave.ErrAlreadyDecided
	}

	authorized, err := s.employeeRepo.IsAuthorizedApprover(ctx, approverID, request.EmployeeID)
	if err != nil {
		return leave.DecisionResponse{}, err
	}
	if !authorized {
		return leave.DecisionResponse{}, leave.ErrNotAuthorized
	}

	now := s.now()
	var decided leave.LeaveRequest
	var postedLedger *ledger.PeriodLedger

	err = postgresql.WithSerializableRetry(ctx, s.db, func(txCtx context.Context) error {
		locked, err := s.leaveRepo.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}
		if locked.Status != leave.LeaveRequestStatusPending {
			return leave.ErrAlreadyDecided
		}

		locked.Status = leave.LeaveRequestStatus(req.Status)
		locked.ApprovedByID = &approverID
		decidedAt := now
		locked.ApprovedAt = &decidedAt
		locked.RejectionReason = req.RejectionReason

		if locked.Status == leave.LeaveRequestStatusApproved {
			period := ledger.CurrentPeriod(now)
			posted, err := s.ledgerStore.ApplyTakenLeave(txCtx, locked.EmployeeID, period, locked.DayCount())
			if err != nil {
				return fmt.Errorf("failed to post approved leave: %w", err)
			}
			postedLedger = &posted
		}

		if err := s.leaveRepo.UpdateDecision(txCtx, locked); err != nil {
			return err
		}

		decided = locked
		return nil
	})
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave request decided",
		slog.String("leave_request_id", decided.ID),
		slog.String("status", string(decided.Status)),
		slog.String("approver_id", approverID),
	)

	s.notifyDecision(ctx, decided)

	resp := leave.DecisionResponse{Request: leave.ToResponse(decided)}
	if postedLedger != nil {
		lr := ledger.ToResponse(*postedLedger)
		resp.Ledger = &lr
	}
	return resp, nil
}

// GetRequest implements leave.LeaveService.
func (s *leaveService) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(request), nil
}

// notifyDecision emails the employee about the decision. Best effort:
// the decision is already committed, so failures only log.
func (s *leaveService) notifyDecision(ctx context.Context, request leave.LeaveRequest) {
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load employee for decision email",
			slog.String("employee_id", request.EmployeeID),
			slog.String("error", err.Error()),
		)
		return
	}
	if emp.Email == nil {
		return
	}

	name := request.EmployeeID
	if emp.FullName != nil {
		name = *emp.FullName
	}

	n := notifier.DecisionNotification{
		To:           *emp.Email,
		EmployeeName: name,
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Days:         request.DayCount().String(),
		Status:       string(request.Status),
		Reason:       request.RejectionReason,
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.SendLeaveDecision(sendCtx, n); err != nil {
			s.logger.Warn("failed to send decision email",
				slog.String("leave_request_id", request.ID),
				slog.String("error", err.Error()),
			)
		}
	}()
}
