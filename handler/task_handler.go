package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/middleware"
	"github.com/jagadeeshwarid/TaskTrackerPro/service"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type TaskHandler interface {
	HandleList(c *gin.Context)
	HandleCreate(c *gin.Context)
	HandleUpdateStatus(c *gin.Context)
	HandleListPendingApproval(c *gin.Context)
	HandleApprove(c *gin.Context)
	HandleDelete(c *gin.Context)
}

type taskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) TaskHandler {
	return &taskHandler{
		taskService: taskService,
	}
}

func (h *taskHandler) HandleList(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	tasks, err := h.taskService.List(principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, tasks)
}

func (h *taskHandler) HandleCreate(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req types.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	// Employees can only assign to themselves; the admin form offers
	// the full employee list.
	if !principal.IsAdmin() {
		req.AssignedTo = principal.Username
	}

	task, err := h.taskService.Create(req, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, task)
}

func (h *taskHandler) HandleUpdateStatus(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	taskID := c.Param("id")

	var req types.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.taskService.UpdateStatus(taskID, req.Status, principal); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Task status updated")
}

func (h *taskHandler) HandleListPendingApproval(c *gin.Context) {
	tasks, err := h.taskService.ListPendingApproval()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, tasks)
}

func (h *taskHandler) HandleApprove(c *gin.Context) {
	if err := h.taskService.Approve(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Task approved")
}

func (h *taskHandler) HandleDelete(c *gin.Context) {
	if err := h.taskService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Task deleted")
}
