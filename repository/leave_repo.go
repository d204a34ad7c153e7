package repository

import (
	"fmt"

	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type LeaveRepo interface {
	Create(leave types.LeaveRequest) error
	Get(id string) (*types.LeaveRequest, error)
	List() ([]types.LeaveRequest, error)
	Update(leave types.LeaveRequest) error
	Delete(id string) error
}

type leaveRepo struct {
	table *database.Table[types.LeaveRequest]
}

func NewLeaveRepo(table *database.Table[types.LeaveRequest]) LeaveRepo {
	return &leaveRepo{
		table: table,
	}
}

func (r *leaveRepo) Create(leave types.LeaveRequest) error {
	return r.table.Append(leave)
}

func (r *leaveRepo) Get(id string) (*types.LeaveRequest, error) {
	leaves, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	for i := range leaves {
		if leaves[i].LeaveID == id {
			return &leaves[i], nil
		}
	}
	return nil, fmt.Errorf("%w: leave %q", types.ErrNotFound, id)
}

func (r *leaveRepo) List() ([]types.LeaveRequest, error) {
	return r.table.Load()
}

func (r *leaveRepo) Update(leave types.LeaveRequest) error {
	return r.table.Update(func(leaves []types.LeaveRequest) ([]types.LeaveRequest, error) {
		for i := range leaves {
			if leaves[i].LeaveID == leave.LeaveID {
				leaves[i] = leave
				return leaves, nil
			}
		}
		return nil, fmt.Errorf("%w: leave %q", types.ErrNotFound, leave.LeaveID)
	})
}

func (r *leaveRepo) Delete(id string) error {
	return r.table.Update(func(leaves []types.LeaveRequest) ([]types.LeaveRequest, error) {
		for i := range leaves {
			if leaves[i].LeaveID == id {
				return append(leaves[:i], leaves[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: leave %q", types.ErrNotFound, id)
	})
}
