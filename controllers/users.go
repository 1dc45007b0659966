package controllers

import (
	"errors"
	"log"
	"net/http"

	userdto "github.com/attajnr2001/adwumawura-2/dto/user"
	"github.com/attajnr2001/adwumawura-2/middleware"
	"github.com/attajnr2001/adwumawura-2/services"
	"github.com/attajnr2001/adwumawura-2/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUser handles the multipart registration form. A successful
// registration immediately returns a session token alongside the profile.
func RegisterUser(c *gin.Context) {
	var data userdto.UserRegisterDTO

	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, name, email, and password are required"})
		return
	}

	imagePath := ""
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		imagePath, err = utils.SaveImage(fileHeader)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidImage) || errors.Is(err, utils.ErrImageTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			serverError(c, err)
			return
		}
	}

	userService := services.UserService{}

	user, err := userService.RegisterUser(data, imagePath)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

func LoginUser(c *gin.Context) {
	var loginData userdto.UserLoginDTO

	if err := c.ShouldBindJSON(&loginData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userService := services.UserService{}

	token, user, err := userService.LoginUser(loginData.Username, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		log.Println("Login error:", err)
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies an allow-listed partial update from a multipart form,
// optionally replacing the profile image.
func UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	updates := map[string]string{}
	for field, values := range form.Value {
		if len(values) > 0 {
			updates[field] = values[0]
		}
	}

	imagePath := ""
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		imagePath, err = utils.SaveImage(fileHeader)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidImage) || errors.Is(err, utils.ErrImageTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			serverError(c, err)
			return
		}
	}

	userService := services.UserService{}

	updated, err := userService.UpdateProfile(user, updates, imagePath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUpdateField):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
