package utils

import (
	"time"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/models"

	"github.com/dgrijalva/jwt-go"
)

// TokenTTL is the fixed session lifetime.
const TokenTTL = time.Hour

func GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"id":       user.ID.Hex(),
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))

	if err != nil {
		return "", err
	}

	return tokenString, nil
}
