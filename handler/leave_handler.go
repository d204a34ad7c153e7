package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/middleware"
	"github.com/jagadeeshwarid/TaskTrackerPro/service"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

type LeaveHandler interface {
	HandleSubmit(c *gin.Context)
	HandleListMine(c *gin.Context)
	HandleCancel(c *gin.Context)
	HandleListPending(c *gin.Context)
	HandleDecide(c *gin.Context)
}

type leaveHandler struct {
	leaveService service.LeaveService
}

func NewLeaveHandler(leaveService service.LeaveService) LeaveHandler {
	return &leaveHandler{
		leaveService: leaveService,
	}
}

func (h *leaveHandler) HandleSubmit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req types.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	leave, err := h.leaveService.Submit(principal, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, leave)
}

func (h *leaveHandler) HandleListMine(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	leaves, err := h.leaveService.ListFor(principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, leaves)
}

func (h *leaveHandler) HandleCancel(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	if err := h.leaveService.Cancel(c.Param("id"), principal); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Leave request cancelled")
}

func (h *leaveHandler) HandleListPending(c *gin.Context) {
	leaves, err := h.leaveService.ListPending()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, leaves)
}

func (h *leaveHandler) HandleDecide(c *gin.Context) {
	var req types.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.leaveService.Decide(c.Param("id"), req.Outcome); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Leave request "+req.Outcome)
}
