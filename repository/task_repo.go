package repository

import (
	"fmt"

	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type TaskRepo interface {
	Create(task types.Task) error
	Get(id string) (*types.Task, error)
	List() ([]types.Task, error)
	Update(task types.Task) error
	Delete(id string) error
}

type taskRepo struct {
	table *database.Table[types.Task]
}

func NewTaskRepo(table *database.Table[types.Task]) TaskRepo {
	return &taskRepo{
		table: table,
	}
}

func (r *taskRepo) Create(task types.Task) error {
	return r.table.Append(task)
}

func (r *taskRepo) Get(id string) (*types.Task, error) {
	tasks, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].TaskID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: task %q", types.ErrNotFound, id)
}

func (r *taskRepo) List() ([]types.Task, error) {
	return r.table.Load()
}

func (r *taskRepo) Update(task types.Task) error {
	return r.table.Update(func(tasks []types.Task) ([]types.Task, error) {
		for i := range tasks {
			if tasks[i].TaskID == task.TaskID {
				tasks[i] = task
				return tasks, nil
			}
		}
		return nil, fmt.Errorf("%w: task %q", types.ErrNotFound, task.TaskID)
	})
}

func (r *taskRepo) Delete(id string) error {
	return r.table.Update(func(tasks []types.Task) ([]types.Task, error) {
		for i := range tasks {
			if tasks[i].TaskID == id {
				return append(tasks[:i], tasks[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: task %q", types.ErrNotFound, id)
	})
}
