package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type TaskService interface {
	List(viewer types.Principal) ([]types.Task, error)
	ListPendingApproval() ([]types.Task, error)
	Create(req types.CreateTaskRequest, creator types.Principal) (*types.Task, error)
	UpdateStatus(taskID, newStatus string, actor types.Principal) error
	Approve(taskID string) error
	Delete(taskID string) error
}

type taskService struct {
	repo repository.TaskRepo
}

func NewTaskService(repo repository.TaskRepo) TaskService {
	return &taskService{
		repo: repo,
	}
}

// List scopes by role: admins see everything, employees see the union
// of tasks assigned to them and tasks they created.
func (s *taskService) List(viewer types.Principal) ([]types.Task, error) {
	tasks, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if viewer.IsAdmin() {
		return tasks, nil
	}
	visible := make([]types.Task, 0)
	for _, t := range tasks {
		if t.AssignedTo == viewer.Username || t.CreatedBy == viewer.Username {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

func (s *taskService) ListPendingApproval() ([]types.Task, error) {
	tasks, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	pending := make([]types.Task, 0)
	for _, t := range tasks {
		if !t.Approved && t.CreatedBy != "admin" {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

// Create auto-approves tasks created by admins; everyone else's tasks
// wait on the admin approval queue.
func (s *taskService) Create(req types.CreateTaskRequest, creator types.Principal) (*types.Task, error) {
	if req.Title == "" || req.Description == "" || req.AssignedTo == "" {
		return nil, fmt.Errorf("%w: title, description and assigned_to are required", types.ErrValidation)
	}
	if !types.ValidTaskSeverity(req.Severity) {
		return nil, fmt.Errorf("%w: unknown severity %q", types.ErrValidation, req.Severity)
	}
	if req.Deadline != "" {
		if _, err := time.Parse(types.DateLayout, req.Deadline); err != nil {
			return nil, fmt.Errorf("%w: deadline must be YYYY-MM-DD", types.ErrValidation)
		}
	}

	task := types.Task{
		TaskID:      uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Deadline:    req.Deadline,
		Severity:    req.Severity,
		Status:      types.TASK_STATUS_NOT_STARTED,
		CreatedBy:   creator.Username,
		Approved:    creator.IsAdmin(),
	}
	if err := s.repo.Create(task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus allows the assignee or any admin to set any of the
// three states in any order. The free transitions are intentional.
func (s *taskService) UpdateStatus(taskID, newStatus string, actor types.Principal) error {
	if !types.ValidTaskStatus(newStatus) {
		return fmt.Errorf("%w: unknown status %q", types.ErrValidation, newStatus)
	}
	task, err := s.repo.Get(taskID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && task.AssignedTo != actor.Username {
		return fmt.Errorf("%w: only the assignee or an admin may update task status", types.ErrForbidden)
	}
	task.Status = newStatus
	return s.repo.Update(*task)
}

func (s *taskService) Approve(taskID string) error {
	task, err := s.repo.Get(taskID)
	if err != nil {
		return err
	}
	task.Approved = true
	return s.repo.Update(*task)
}

// Delete is also rejection: unlike leaves, a rejected task leaves no
// record behind.
func (s *taskService) Delete(taskID string) error {
	return s.repo.Delete(taskID)
}
