package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (suite *APITestSuite) TestListArtisans_PublicProjection() {
	user, _ := suite.createTestUser("alice", "alice@example.com", "secret123")
	suite.createTestUser("bob", "bob@example.com", "secret123")

	rr := suite.makeRequest(http.MethodGet, "/api/users/artisans", "", nil, nil)
	suite.Equal(http.StatusOK, rr.Code)

	var artisans []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &artisans))
	suite.Len(artisans, 2)

	for _, artisan := range artisans {
		suite.Contains(artisan, "name")
		suite.Contains(artisan, "averageRating")
		suite.NotContains(artisan, "password")
		suite.NotContains(artisan, "email")
	}

	ids := []interface{}{artisans[0]["id"], artisans[1]["id"]}
	suite.Contains(ids, user.ID.Hex())
}

func (suite *APITestSuite) TestRateUser_FirstAndSecondRating() {
	target, _ := suite.createTestUser("carla", "carla@example.com", "secret123")
	_, aliceToken := suite.createTestUser("alice", "alice@example.com", "secret123")
	_, bobToken := suite.createTestUser("bob", "bob@example.com", "secret123")

	// First rating: average equals the single score.
	rr := suite.jsonRequest(http.MethodPost, "/api/users/rate/"+target.ID.Hex(), aliceToken, map[string]interface{}{
		"rating": 5,
	})
	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal(float64(5), suite.decodeBody(rr)["averageRating"])

	// Second rating from another user: mean of both.
	rr = suite.jsonRequest(http.MethodPost, "/api/users/rate/"+target.ID.Hex(), bobToken, map[string]interface{}{
		"rating":  3,
		"comment": "Decent work",
	})
	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal(float64(4), suite.decodeBody(rr)["averageRating"])

	var stored models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"_id": target.ID}).Decode(&stored)
	suite.Require().NoError(err)
	suite.Len(stored.Ratings, 2)
	suite.Equal(float64(4), stored.AverageRating)
	suite.Equal("Decent work", stored.Ratings[1].Comment)
}

func (suite *APITestSuite) TestRateUser_OutOfRangeLeavesTargetUnchanged() {
	target, _ := suite.createTestUser("carla", "carla@example.com", "secret123")
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	for _, score := range []int{0, 6} {
		rr := suite.jsonRequest(http.MethodPost, "/api/users/rate/"+target.ID.Hex(), token, map[string]interface{}{
			"rating": score,
		})
		suite.Equal(http.StatusBadRequest, rr.Code)
	}

	var stored models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"_id": target.ID}).Decode(&stored)
	suite.Require().NoError(err)
	suite.Len(stored.Ratings, 0)
	suite.Equal(float64(0), stored.AverageRating)
}

func (suite *APITestSuite) TestRateUser_SelfRatingForbidden() {
	user, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/users/rate/"+user.ID.Hex(), token, map[string]interface{}{
		"rating": 5,
	})
	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *APITestSuite) TestRateUser_DuplicateRaterForbidden() {
	target, _ := suite.createTestUser("carla", "carla@example.com", "secret123")
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/users/rate/"+target.ID.Hex(), token, map[string]interface{}{
		"rating": 4,
	})
	suite.Equal(http.StatusOK, rr.Code)

	rr = suite.jsonRequest(http.MethodPost, "/api/users/rate/"+target.ID.Hex(), token, map[string]interface{}{
		"rating": 2,
	})
	suite.Equal(http.StatusBadRequest, rr.Code)

	var stored models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"_id": target.ID}).Decode(&stored)
	suite.Require().NoError(err)
	suite.Len(stored.Ratings, 1)
	suite.Equal(float64(4), stored.AverageRating)
}

func (suite *APITestSuite) TestRateUser_TargetNotFound() {
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/users/rate/64b0c0ffee0000000000aaaa", token, map[string]interface{}{
		"rating": 5,
	})
	suite.Equal(http.StatusNotFound, rr.Code)
}
