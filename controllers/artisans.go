package controllers

import (
	"errors"
	"net/http"

	userdto "github.com/attajnr2001/adwumawura-2/dto/user"
	"github.com/attajnr2001/adwumawura-2/middleware"
	"github.com/attajnr2001/adwumawura-2/services"

	"github.com/gin-gonic/gin"
)

// ListArtisans returns the public artisan directory. Filtering happens
// client-side, so no query parameters are accepted here.
func ListArtisans(c *gin.Context) {
	userService := services.UserService{}

	artisans, err := userService.ListArtisans(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, artisans)
}

// RateUser submits a 1-5 rating for the user named in the path.
func RateUser(c *gin.Context) {
	rater, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var data userdto.RatingDTO
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userService := services.UserService{}

	averageRating, err := userService.RateUser(c.Param("id"), rater, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRatingOutOfRange),
			errors.Is(err, services.ErrSelfRating),
			errors.Is(err, services.ErrAlreadyRated):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Rating submitted successfully",
		"averageRating": averageRating,
	})
}
