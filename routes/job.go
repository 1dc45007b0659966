package routes

import (
	"github.com/attajnr2001/adwumawura-2/controllers"
	"github.com/attajnr2001/adwumawura-2/middleware"

	"github.com/gin-gonic/gin"
)

// SetupJobRoutes defines the job posting and application routes.
func SetupJobRoutes(r *gin.Engine) {
	private := r.Group("/api/jobs")
	private.Use(middleware.AuthMiddleware())

	private.POST("/create", controllers.CreateJob)
	private.GET("/all", controllers.ListJobs)
	private.POST("/apply/:id", controllers.ApplyToJob)
	private.POST("/accept/:id", controllers.AcceptApplicant)
}
