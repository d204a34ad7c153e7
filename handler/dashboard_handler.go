package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/middleware"
	"github.com/jagadeeshwarid/TaskTrackerPro/service"
)

type DashboardHandler interface {
	HandleAdminOverview(c *gin.Context)
	HandleEmployeeOverview(c *gin.Context)
}

type dashboardHandler struct {
	reportService service.ReportService
}

func NewDashboardHandler(reportService service.ReportService) DashboardHandler {
	return &dashboardHandler{
		reportService: reportService,
	}
}

func (h *dashboardHandler) HandleAdminOverview(c *gin.Context) {
	overview, err := h.reportService.AdminOverview()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, overview)
}

func (h *dashboardHandler) HandleEmployeeOverview(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	overview, err := h.reportService.EmployeeOverview(principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, overview)
}
