package controllers

import (
	"errors"
	"net/http"

	messagedto "github.com/attajnr2001/adwumawura-2/dto/message"
	"github.com/attajnr2001/adwumawura-2/middleware"
	"github.com/attajnr2001/adwumawura-2/services"

	"github.com/gin-gonic/gin"
)

func SendMessage(c *gin.Context) {
	sender, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var data messagedto.MessageSendDTO
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageService := services.MessageService{}

	if _, err := messageService.SendMessage(sender, data); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingMessageFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// ListReceivedMessages returns the authenticated user's inbox, newest first.
func ListReceivedMessages(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	messageService := services.MessageService{}

	messages, err := messageService.ListReceived(user)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
