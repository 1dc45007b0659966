package routes

import (
	"github.com/attajnr2001/adwumawura-2/controllers"
	"github.com/attajnr2001/adwumawura-2/middleware"

	"github.com/gin-gonic/gin"
)

// SetupMessageRoutes defines the direct messaging routes.
func SetupMessageRoutes(r *gin.Engine) {
	private := r.Group("/api/messages")
	private.Use(middleware.AuthMiddleware())

	private.POST("/send", controllers.SendMessage)
	private.GET("/received", controllers.ListReceivedMessages)
}
