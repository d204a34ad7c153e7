package repository

import (
	"fmt"

	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type TimesheetRepo interface {
	Create(entry types.TimesheetEntry) error
	GetByEmployeeDate(employee, date string) (*types.TimesheetEntry, error)
	List() ([]types.TimesheetEntry, error)
	ListByEmployee(employee string) ([]types.TimesheetEntry, error)
	// Update replaces the entry keyed by (employee, date).
	Update(entry types.TimesheetEntry) error
}

type timesheetRepo struct {
	table *database.Table[types.TimesheetEntry]
}

func NewTimesheetRepo(table *database.Table[types.TimesheetEntry]) TimesheetRepo {
	return &timesheetRepo{
		table: table,
	}
}

func (r *timesheetRepo) Create(entry types.TimesheetEntry) error {
	return r.table.Update(func(entries []types.TimesheetEntry) ([]types.TimesheetEntry, error) {
		for _, e := range entries {
			if e.Employee == entry.Employee && e.Date == entry.Date {
				return nil, fmt.Errorf("%w: timesheet for %s on %s", types.ErrAlreadyExists, entry.Employee, entry.Date)
			}
		}
		return append(entries, entry), nil
	})
}

func (r *timesheetRepo) GetByEmployeeDate(employee, date string) (*types.TimesheetEntry, error) {
	entries, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Employee == employee && entries[i].Date == date {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: timesheet for %s on %s", types.ErrNotFound, employee, date)
}

func (r *timesheetRepo) List() ([]types.TimesheetEntry, error) {
	return r.table.Load()
}

func (r *timesheetRepo) ListByEmployee(employee string) ([]types.TimesheetEntry, error) {
	entries, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	filtered := make([]types.TimesheetEntry, 0)
	for _, e := range entries {
		if e.Employee == employee {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (r *timesheetRepo) Update(entry types.TimesheetEntry) error {
	return r.table.Update(func(entries []types.TimesheetEntry) ([]types.TimesheetEntry, error) {
		for i := range entries {
			if entries[i].Employee == entry.Employee && entries[i].Date == entry.Date {
				entries[i] = entry
				return entries, nil
			}
		}
		return nil, fmt.Errorf("%w: timesheet for %s on %s", types.ErrNotFound, entry.Employee, entry.Date)
	})
}
