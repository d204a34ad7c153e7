package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

// TimesheetService implements the login/logout model: per (employee,
// date) the entry moves NotLoggedIn -> LoggedIn -> LoggedOut, and
// LoggedOut is terminal for that date.
type TimesheetService interface {
	Login(employee string) (*types.TimesheetEntry, error)
	UpdateProgress(employee string, tasks []string, notes string) error
	Logout(employee string) (*types.TimesheetEntry, error)
	History(employee string) ([]types.TimesheetEntry, error)
	AssignedTaskTitles(employee string) ([]string, error)
}

type timesheetService struct {
	repo     repository.TimesheetRepo
	taskRepo repository.TaskRepo
	now      func() time.Time
}

func NewTimesheetService(repo repository.TimesheetRepo, taskRepo repository.TaskRepo) TimesheetService {
	return NewTimesheetServiceWithClock(repo, taskRepo, time.Now)
}

// NewTimesheetServiceWithClock injects the clock; tests pin it.
func NewTimesheetServiceWithClock(repo repository.TimesheetRepo, taskRepo repository.TaskRepo, now func() time.Time) TimesheetService {
	return &timesheetService{
		repo:     repo,
		taskRepo: taskRepo,
		now:      now,
	}
}

func (s *timesheetService) Login(employee string) (*types.TimesheetEntry, error) {
	now := s.now()
	today := now.Format(types.DateLayout)

	if _, err := s.repo.GetByEmployeeDate(employee, today); err == nil {
		return nil, fmt.Errorf("%w: %s on %s", types.ErrAlreadyLoggedIn, employee, today)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	entry := types.TimesheetEntry{
		TimesheetID: uuid.NewString(),
		Employee:    employee,
		Date:        today,
		LoginTime:   now.Format(types.TimeLayout),
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *timesheetService) UpdateProgress(employee string, tasks []string, notes string) error {
	entry, err := s.todayLoggedIn(employee)
	if err != nil {
		return err
	}
	entry.Tasks = strings.Join(tasks, ", ")
	entry.TaskNotes = notes
	return s.repo.Update(*entry)
}

func (s *timesheetService) Logout(employee string) (*types.TimesheetEntry, error) {
	entry, err := s.todayLoggedIn(employee)
	if err != nil {
		return nil, err
	}

	logoutTime := s.now().Format(types.TimeLayout)
	hours, err := hoursBetween(entry.LoginTime, logoutTime)
	if err != nil {
		return nil, err
	}
	entry.LogoutTime = logoutTime
	entry.HoursWorked = hours
	if err := s.repo.Update(*entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// History is date-descending, the order the dashboard shows it in.
func (s *timesheetService) History(employee string) ([]types.TimesheetEntry, error) {
	entries, err := s.repo.ListByEmployee(employee)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}

func (s *timesheetService) AssignedTaskTitles(employee string) ([]string, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0)
	for _, t := range tasks {
		if t.AssignedTo == employee {
			titles = append(titles, t.Title)
		}
	}
	return titles, nil
}

// todayLoggedIn returns today's entry if and only if the employee is
// currently in the LoggedIn state.
func (s *timesheetService) todayLoggedIn(employee string) (*types.TimesheetEntry, error) {
	today := s.now().Format(types.DateLayout)
	entry, err := s.repo.GetByEmployeeDate(employee, today)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s on %s", types.ErrNotLoggedIn, employee, today)
		}
		return nil, err
	}
	if entry.LoginTime == "" {
		return nil, fmt.Errorf("%w: %s on %s", types.ErrNotLoggedIn, employee, today)
	}
	if entry.LogoutTime != "" {
		return nil, fmt.Errorf("%w: already logged out on %s", types.ErrNotLoggedIn, today)
	}
	return entry, nil
}

// hoursBetween computes worked hours from the wall-clock columns,
// rounded to 2 decimals. Both times are within the same date.
func hoursBetween(loginTime, logoutTime string) (float64, error) {
	login, err := time.Parse(types.TimeLayout, loginTime)
	if err != nil {
		return 0, fmt.Errorf("%w: bad login_time %q", types.ErrStorageUnavailable, loginTime)
	}
	logout, err := time.Parse(types.TimeLayout, logoutTime)
	if err != nil {
		return 0, fmt.Errorf("%w: bad logout_time %q", types.ErrStorageUnavailable, logoutTime)
	}
	hours := logout.Sub(login).Hours()
	return math.Round(hours*100) / 100, nil
}
