package repository

import (
	"fmt"

	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type UserRepo interface {
	GetByUsername(username string) (*types.User, error)
	List() ([]types.User, error)
	Create(user types.User) error
	UpdatePassword(username, passwordHash string) error
}

type userRepo struct {
	table *database.Table[types.User]
}

func NewUserRepo(table *database.Table[types.User]) UserRepo {
	return &userRepo{
		table: table,
	}
}

func (r *userRepo) GetByUsername(username string) (*types.User, error) {
	users, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", types.ErrNotFound, username)
}

func (r *userRepo) List() ([]types.User, error) {
	return r.table.Load()
}

func (r *userRepo) Create(user types.User) error {
	return r.table.Update(func(users []types.User) ([]types.User, error) {
		for _, u := range users {
			if u.Username == user.Username {
				return nil, fmt.Errorf("%w: user %q", types.ErrAlreadyExists, user.Username)
			}
		}
		return append(users, user), nil
	})
}

func (r *userRepo) UpdatePassword(username, passwordHash string) error {
	return r.table.Update(func(users []types.User) ([]types.User, error) {
		for i := range users {
			if users[i].Username == username {
				users[i].Password = passwordHash
				return users, nil
			}
		}
		return nil, fmt.Errorf("%w: user %q", types.ErrNotFound, username)
	})
}
