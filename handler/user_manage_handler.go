package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/service"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

// UserManageHandler is the admin user-management surface: account
// creation with an explicit role, listings for assignment dropdowns,
// and password reset.
type UserManageHandler interface {
	HandleCreateUser(c *gin.Context)
	HandleListUsers(c *gin.Context)
	HandleListEmployees(c *gin.Context)
	HandleResetPassword(c *gin.Context)
}

type userManageHandler struct {
	authService service.AuthService
}

func NewUserManageHandler(authService service.AuthService) UserManageHandler {
	return &userManageHandler{
		authService: authService,
	}
}

func (h *userManageHandler) HandleCreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.authService.Create(req.Username, req.Password, req.Role); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "User created successfully")
}

func (h *userManageHandler) HandleListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, users)
}

func (h *userManageHandler) HandleListEmployees(c *gin.Context) {
	employees, err := h.authService.ListEmployees()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, employees)
}

func (h *userManageHandler) HandleResetPassword(c *gin.Context) {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.authService.ResetPassword(req.Username, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Password reset successfully")
}
