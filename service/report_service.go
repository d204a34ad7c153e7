package service

import (
	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

// ReportService computes the aggregates behind the two dashboards.
// Reads are unlocked snapshots; the pages re-query on every
// interaction anyway.
type ReportService interface {
	AdminOverview() (*types.AdminOverview, error)
	EmployeeOverview(viewer types.Principal) (*types.EmployeeOverview, error)
}

type reportService struct {
	taskRepo      repository.TaskRepo
	leaveRepo     repository.LeaveRepo
	timesheetRepo repository.TimesheetRepo
}

func NewReportService(taskRepo repository.TaskRepo, leaveRepo repository.LeaveRepo, timesheetRepo repository.TimesheetRepo) ReportService {
	return &reportService{
		taskRepo:      taskRepo,
		leaveRepo:     leaveRepo,
		timesheetRepo: timesheetRepo,
	}
}

func (s *reportService) AdminOverview() (*types.AdminOverview, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, err
	}
	leaves, err := s.leaveRepo.List()
	if err != nil {
		return nil, err
	}
	timesheets, err := s.timesheetRepo.List()
	if err != nil {
		return nil, err
	}

	overview := &types.AdminOverview{
		TaskStatusCounts: map[string]int{},
		PendingTasks:     []types.Task{},
		PendingLeaves:    []types.LeaveRequest{},
		HoursByEmployee:  map[string]float64{},
	}
	for _, t := range tasks {
		overview.TaskStatusCounts[t.Status]++
		if !t.Approved && t.CreatedBy != "admin" {
			overview.PendingTasks = append(overview.PendingTasks, t)
		}
	}
	for _, l := range leaves {
		if l.Status == types.LEAVE_STATUS_PENDING {
			overview.PendingLeaves = append(overview.PendingLeaves, l)
		}
	}
	for _, e := range timesheets {
		overview.HoursByEmployee[e.Employee] += e.HoursWorked
	}
	return overview, nil
}

func (s *reportService) EmployeeOverview(viewer types.Principal) (*types.EmployeeOverview, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, err
	}
	leaves, err := s.leaveRepo.List()
	if err != nil {
		return nil, err
	}
	timesheets, err := s.timesheetRepo.ListByEmployee(viewer.Username)
	if err != nil {
		return nil, err
	}

	overview := &types.EmployeeOverview{
		TaskStatusCounts: map[string]int{},
		Tasks:            []types.Task{},
		Leaves:           []types.LeaveRequest{},
		HoursByDate:      map[string]float64{},
	}
	for _, t := range tasks {
		if t.AssignedTo == viewer.Username {
			overview.Tasks = append(overview.Tasks, t)
			overview.TaskStatusCounts[t.Status]++
		}
	}
	for _, l := range leaves {
		if l.Employee == viewer.Username {
			overview.Leaves = append(overview.Leaves, l)
		}
	}
	for _, e := range timesheets {
		overview.HoursByDate[e.Date] += e.HoursWorked
	}
	return overview, nil
}
