package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type LeaveService interface {
	Submit(employee types.Principal, req types.SubmitLeaveRequest) (*types.LeaveRequest, error)
	ListFor(employee types.Principal) ([]types.LeaveRequest, error)
	ListPending() ([]types.LeaveRequest, error)
	Decide(leaveID, outcome string) error
	Cancel(leaveID string, actor types.Principal) error
}

type leaveService struct {
	repo repository.LeaveRepo
}

func NewLeaveService(repo repository.LeaveRepo) LeaveService {
	return &leaveService{
		repo: repo,
	}
}

func (s *leaveService) Submit(employee types.Principal, req types.SubmitLeaveRequest) (*types.LeaveRequest, error) {
	start, err := time.Parse(types.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", types.ErrValidation)
	}
	end, err := time.Parse(types.DateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", types.ErrValidation)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: end date must not be before start date", types.ErrValidation)
	}
	if !types.ValidLeaveType(req.LeaveType) {
		return nil, fmt.Errorf("%w: unknown leave type %q", types.ErrValidation, req.LeaveType)
	}

	leave := types.LeaveRequest{
		LeaveID:   uuid.NewString(),
		Employee:  employee.Username,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		LeaveType: req.LeaveType,
		Status:    types.LEAVE_STATUS_PENDING,
		Reason:    req.Reason,
	}
	if err := s.repo.Create(leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (s *leaveService) ListFor(employee types.Principal) ([]types.LeaveRequest, error) {
	leaves, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	mine := make([]types.LeaveRequest, 0)
	for _, l := range leaves {
		if l.Employee == employee.Username {
			mine = append(mine, l)
		}
	}
	return mine, nil
}

func (s *leaveService) ListPending() ([]types.LeaveRequest, error) {
	leaves, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	pending := make([]types.LeaveRequest, 0)
	for _, l := range leaves {
		if l.Status == types.LEAVE_STATUS_PENDING {
			pending = append(pending, l)
		}
	}
	return pending, nil
}

// Decide records the outcome on the request; unlike tasks, rejected
// leaves are retained.
func (s *leaveService) Decide(leaveID, outcome string) error {
	if outcome != types.LEAVE_STATUS_APPROVED && outcome != types.LEAVE_STATUS_REJECTED {
		return fmt.Errorf("%w: outcome must be %q or %q", types.ErrValidation,
			types.LEAVE_STATUS_APPROVED, types.LEAVE_STATUS_REJECTED)
	}
	leave, err := s.repo.Get(leaveID)
	if err != nil {
		return err
	}
	leave.Status = outcome
	return s.repo.Update(*leave)
}

// Cancel is the employee's self-service delete, allowed only on their
// own request and only while it is still pending.
func (s *leaveService) Cancel(leaveID string, actor types.Principal) error {
	leave, err := s.repo.Get(leaveID)
	if err != nil {
		return err
	}
	if leave.Employee != actor.Username {
		return fmt.Errorf("%w: only the owner may cancel a leave request", types.ErrForbidden)
	}
	if leave.Status != types.LEAVE_STATUS_PENDING {
		return fmt.Errorf("%w: only pending leave requests can be cancelled", types.ErrForbidden)
	}
	return s.repo.Delete(leaveID)
}
