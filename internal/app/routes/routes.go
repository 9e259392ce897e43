package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/facultyhub/internal/app/controllers"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/middleware"
)

// HealthCheck reports whether the backing store is reachable
type HealthCheck func(ctx context.Context) error

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	statisticsController *controllers.StatisticsController,
	documentController *controllers.DocumentController,
	healthCheck HealthCheck,
) {
	// API version group
	v1 := router.Group("/api/v1")

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", facultyController.ListFaculty)
		faculty.POST("", facultyController.CreateFaculty)
		faculty.GET("/:id", facultyController.GetFaculty)
		faculty.PUT("/:id", facultyController.UpdateFaculty)
		faculty.PATCH("/:id", facultyController.UpdateFaculty)
		faculty.DELETE("/:id", facultyController.DeleteFaculty)
		faculty.POST("/:id/ratify", facultyController.RatifyFaculty)
		faculty.POST("/:id/documents", documentController.UploadDocument)
		faculty.DELETE("/:id/documents/:file", documentController.DeleteDocument)

		ratification := faculty.Group("/ratification")
		{
			ratification.GET("/eligible", facultyController.ListEligible)
			ratification.GET("/rules", facultyController.GetRules)
		}
	}

	stats := v1.Group("/stats")
	{
		stats.GET("/overview", statisticsController.GetOverview)
		stats.GET("/departments", statisticsController.GetDepartmentDistribution)
	}

	v1.GET("/health", healthHandler(healthCheck))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}

func healthHandler(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				middleware.HandleAPIError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	}
}
