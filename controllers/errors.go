package controllers

import (
	"log"
	"net/http"

	"github.com/attajnr2001/adwumawura-2/config"

	"github.com/gin-gonic/gin"
)

// serverError hides failure detail outside development mode.
func serverError(c *gin.Context, err error) {
	log.Println("Server error:", err)

	message := "Server error"
	if config.IsDevelopment() {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
