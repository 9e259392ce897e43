package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
)

// StatisticsController serves dashboard counters
type StatisticsController struct {
	statisticsService services.StatisticsService
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statisticsService services.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

// GetOverview returns headline counts over active faculty
// @Summary Dashboard overview
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatsOverview}
// @Failure 503 {object} dto.APIResponse "Storage unavailable"
// @Router /stats/overview [get]
func (c *StatisticsController) GetOverview(ctx *gin.Context) {
	overview, err := c.statisticsService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview, ""))
}

// GetDepartmentDistribution returns active faculty counts per department
// @Summary Department distribution
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ChartPoint}
// @Router /stats/departments [get]
func (c *StatisticsController) GetDepartmentDistribution(ctx *gin.Context) {
	points, err := c.statisticsService.DepartmentDistribution(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(points, ""))
}
