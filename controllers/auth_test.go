package controllers_test

import (
	"context"
	"net/http"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/models"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"
)

func (suite *APITestSuite) TestRegister_Success() {
	rr := suite.multipartRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice",
		"name":     "Alice Mensah",
		"email":    "alice@example.com",
		"password": "secret123",
		"location": "Accra",
		"skills":   "Carpenter, Painter",
	})

	suite.Equal(http.StatusCreated, rr.Code)
	body := suite.decodeBody(rr)
	suite.Contains(body, "token")

	userBody, ok := body["user"].(map[string]interface{})
	suite.Require().True(ok, "Response should contain the created user")
	suite.Equal("alice", userBody["username"])
	suite.Equal([]interface{}{"Carpenter", "Painter"}, userBody["skills"])
	suite.NotContains(userBody, "password", "Password must never appear in responses")

	// The token must decode to the created user's id.
	token, err := jwt.Parse(body["token"].(string), func(t *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	suite.Require().NoError(err)
	claims := token.Claims.(jwt.MapClaims)
	suite.Equal(userBody["id"], claims["id"])

	// The stored password is a hash, not the plaintext.
	var stored models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err = userCollection.FindOne(context.Background(), bson.M{"username": "alice"}).Decode(&stored)
	suite.Require().NoError(err)
	suite.NotEqual("secret123", stored.Password)
	suite.NotEmpty(stored.Password)
}

func (suite *APITestSuite) TestRegister_MissingFields() {
	rr := suite.multipartRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *APITestSuite) TestRegister_DuplicateUsername() {
	suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.multipartRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice",
		"name":     "Another Alice",
		"email":    "different@example.com",
		"password": "other456",
	})
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Contains(suite.decodeBody(rr)["error"], "username")
}

func (suite *APITestSuite) TestRegister_DuplicateEmail() {
	suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.multipartRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "bob",
		"name":     "Bob",
		"email":    "alice@example.com",
		"password": "other456",
	})
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Contains(suite.decodeBody(rr)["error"], "email")
}

func (suite *APITestSuite) TestLogin_Success() {
	suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	suite.Equal(http.StatusOK, rr.Code)

	body := suite.decodeBody(rr)
	suite.Contains(body, "token")
	userBody := body["user"].(map[string]interface{})
	suite.Equal("alice", userBody["username"])
	suite.NotContains(userBody, "password")
}

func (suite *APITestSuite) TestLogin_WrongPassword() {
	suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *APITestSuite) TestLogin_UnknownUser() {
	rr := suite.jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *APITestSuite) TestGetProfile_Success() {
	user, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.makeRequest(http.MethodGet, "/api/auth/profile", token, nil, nil)
	suite.Equal(http.StatusOK, rr.Code)

	body := suite.decodeBody(rr)
	suite.Equal(user.ID.Hex(), body["id"])
	suite.Equal("alice", body["username"])
	suite.NotContains(body, "password")
}

func (suite *APITestSuite) TestGetProfile_NoToken() {
	rr := suite.makeRequest(http.MethodGet, "/api/auth/profile", "", nil, nil)
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *APITestSuite) TestGetProfile_ExpiredToken() {
	// Token signed with the right secret but already expired.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "64b0c0ffee0000000000aaaa",
		"exp": 1,
	})
	tokenString, err := expired.SignedString([]byte(config.AppConfig.JWTSecret))
	suite.Require().NoError(err)

	rr := suite.makeRequest(http.MethodGet, "/api/auth/profile", tokenString, nil, nil)
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *APITestSuite) TestUpdateProfile_Success() {
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.multipartRequest(http.MethodPut, "/api/auth/update", token, map[string]string{
		"location": "Kumasi",
		"skills":   " Baker , Welder ",
		"bio":      "Experienced baker",
	})
	suite.Equal(http.StatusOK, rr.Code)

	body := suite.decodeBody(rr)
	suite.Equal("Kumasi", body["location"])
	suite.Equal([]interface{}{"Baker", "Welder"}, body["skills"])
	suite.Equal("Experienced baker", body["bio"])
}

func (suite *APITestSuite) TestUpdateProfile_UnknownFieldRejected() {
	user, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.multipartRequest(http.MethodPut, "/api/auth/update", token, map[string]string{
		"username": "newalice",
	})
	suite.Equal(http.StatusBadRequest, rr.Code)

	// Nothing was written.
	var stored models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"_id": user.ID}).Decode(&stored)
	suite.Require().NoError(err)
	suite.Equal("alice", stored.Username)
}

func (suite *APITestSuite) TestUpdateProfile_EmptyFieldsDropped() {
	user, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.multipartRequest(http.MethodPut, "/api/auth/update", token, map[string]string{
		"location": "",
		"bio":      "Still here",
	})
	suite.Equal(http.StatusOK, rr.Code)

	var stored models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"_id": user.ID}).Decode(&stored)
	suite.Require().NoError(err)
	suite.Equal("", stored.Location, "Empty field must be dropped, not written")
	suite.Equal("Still here", stored.Bio)
}
