package routes

import (
	"github.com/attajnr2001/adwumawura-2/controllers"
	"github.com/attajnr2001/adwumawura-2/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes defines the public artisan listing and rating routes.
func SetupUserRoutes(r *gin.Engine) {
	users := r.Group("/api/users")

	users.GET("/artisans", controllers.ListArtisans)

	private := users.Group("")
	private.Use(middleware.AuthMiddleware())

	private.POST("/rate/:id", controllers.RateUser)
}
