package service

import (
	"fmt"

	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
	"github.com/jagadeeshwarid/TaskTrackerPro/utils"
)

type AuthService interface {
	// Login verifies the credential and issues a signed token
	// carrying the principal. Wrong credentials and storage failures
	// both come back as ErrInvalidCredentials; access is denied, not
	// crashed.
	Login(username, password string) (string, *types.User, error)
	Verify(username, candidate string) bool
	Create(username, password, role string) error
	ResetPassword(username, newPassword string) error
	ListUsers() ([]types.User, error)
	ListEmployees() ([]string, error)
}

type authService struct {
	repo repository.UserRepo
}

func NewAuthService(repo repository.UserRepo) AuthService {
	return &authService{
		repo: repo,
	}
}

func (s *authService) Login(username, password string) (string, *types.User, error) {
	if !s.Verify(username, password) {
		return "", nil, types.ErrInvalidCredentials
	}
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return "", nil, types.ErrInvalidCredentials
	}
	token, err := utils.GenerateUserToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify is deliberately boolean: an unknown user, a wrong password
// and an unreadable users file are all a plain false.
func (s *authService) Verify(username, candidate string) bool {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return false
	}
	return utils.CheckPassword(user.Password, candidate)
}

func (s *authService) Create(username, password, role string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", types.ErrValidation)
	}
	if !types.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", types.ErrValidation, role)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.Create(types.User{
		Username: username,
		Password: hash,
		Role:     role,
	})
}

// ResetPassword always re-hashes with bcrypt, so resetting a
// pre-migration account also migrates it off the legacy digest.
func (s *authService) ResetPassword(username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", types.ErrValidation)
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(username, hash)
}

func (s *authService) ListUsers() ([]types.User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *authService) ListEmployees() ([]string, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	employees := make([]string, 0)
	for _, u := range users {
		if u.Role == types.USER_ROLE_EMPLOYEE {
			employees = append(employees, u.Username)
		}
	}
	return employees, nil
}
