package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/service"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

const minPasswordLength = 6

type LoginHandler interface {
	HandleLogin(c *gin.Context)
	HandleRegister(c *gin.Context)
}

type loginHandler struct {
	authService service.AuthService
}

func NewLoginHandler(authService service.AuthService) LoginHandler {
	return &loginHandler{
		authService: authService,
	}
}

func (h *loginHandler) HandleLogin(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, types.LoginResponse{
		AccessToken: token,
		Username:    user.Username,
		Role:        user.Role,
	})
}

// HandleRegister is the self-service signup surface; it applies the
// form-level password policy on top of the service's own validation
// and always creates an employee account.
func (h *loginHandler) HandleRegister(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if len(req.Password) < minPasswordLength {
		respondError(c, fmt.Errorf("%w: password must be at least %d characters", types.ErrValidation, minPasswordLength))
		return
	}
	if req.Password != req.ConfirmPassword {
		respondError(c, fmt.Errorf("%w: passwords do not match", types.ErrValidation))
		return
	}

	if err := h.authService.Create(req.Username, req.Password, types.USER_ROLE_EMPLOYEE); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "User created successfully")
}
