package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Teacher godoc
// @Summary Teacher landing page numbers
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.TeacherDashboard}
// @Router /api/v1/dashboard/teacher [get]
func (ctl *DashboardController) Teacher(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	dash, err := ctl.dashboardService.TeacherDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, dash)
}

// Settings godoc
// @Summary Per-role usage numbers for the settings page
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.SettingsStats}
// @Router /api/v1/users/stats [get]
func (ctl *DashboardController) Settings(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	stats, err := ctl.dashboardService.SettingsStats(claims.UserID, claims.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, stats)
}

// Student godoc
// @Summary Student landing page numbers
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Router /api/v1/dashboard/student [get]
func (ctl *DashboardController) Student(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	dash, err := ctl.dashboardService.StudentDashboard(claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, dash)
}
