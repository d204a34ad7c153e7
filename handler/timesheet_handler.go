package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/middleware"
	"github.com/jagadeeshwarid/TaskTrackerPro/service"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type TimesheetHandler interface {
	HandleLogin(c *gin.Context)
	HandleUpdateProgress(c *gin.Context)
	HandleLogout(c *gin.Context)
	HandleHistory(c *gin.Context)
	HandleAssignedTasks(c *gin.Context)
}

type timesheetHandler struct {
	timesheetService service.TimesheetService
}

func NewTimesheetHandler(timesheetService service.TimesheetService) TimesheetHandler {
	return &timesheetHandler{
		timesheetService: timesheetService,
	}
}

func (h *timesheetHandler) HandleLogin(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	entry, err := h.timesheetService.Login(principal.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, entry)
}

func (h *timesheetHandler) HandleUpdateProgress(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req types.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.timesheetService.UpdateProgress(principal.Username, req.Tasks, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Progress updated")
}

func (h *timesheetHandler) HandleLogout(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	entry, err := h.timesheetService.Logout(principal.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, types.LogoutResponse{
		LogoutTime:  entry.LogoutTime,
		HoursWorked: entry.HoursWorked,
	})
}

func (h *timesheetHandler) HandleHistory(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	entries, err := h.timesheetService.History(principal.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, entries)
}

func (h *timesheetHandler) HandleAssignedTasks(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	titles, err := h.timesheetService.AssignedTaskTitles(principal.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, titles)
}
