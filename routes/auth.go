package routes

import (
	"github.com/attajnr2001/adwumawura-2/controllers"
	"github.com/attajnr2001/adwumawura-2/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes defines registration, login, and own-profile routes.
func SetupAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")

	auth.POST("/register", controllers.RegisterUser)
	auth.POST("/login", controllers.LoginUser)

	private := auth.Group("")
	private.Use(middleware.AuthMiddleware())

	private.GET("/profile", controllers.GetProfile)
	private.PUT("/update", controllers.UpdateProfile)
}
