package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (suite *APITestSuite) TestSendMessage_Success() {
	_, aliceToken := suite.createTestUser("alice", "alice@example.com", "secret123")
	bob, _ := suite.createTestUser("bob", "bob@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/messages/send", aliceToken, map[string]string{
		"recipientId": bob.ID.Hex(),
		"content":     "Hello Bob, are you free next week?",
	})
	suite.Equal(http.StatusOK, rr.Code)
}

func (suite *APITestSuite) TestSendMessage_MissingFields() {
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/messages/send", token, map[string]string{
		"content": "No recipient",
	})
	suite.Equal(http.StatusBadRequest, rr.Code)

	rr = suite.jsonRequest(http.MethodPost, "/api/messages/send", token, map[string]string{
		"recipientId": primitive.NewObjectID().Hex(),
	})
	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *APITestSuite) TestSendMessage_UnknownRecipient() {
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.jsonRequest(http.MethodPost, "/api/messages/send", token, map[string]string{
		"recipientId": primitive.NewObjectID().Hex(),
		"content":     "Anyone there?",
	})
	suite.Equal(http.StatusNotFound, rr.Code)
}

func (suite *APITestSuite) TestListReceived_OrderAndSenderExpansion() {
	alice, aliceToken := suite.createTestUser("alice", "alice@example.com", "secret123")
	bob, _ := suite.createTestUser("bob", "bob@example.com", "secret123")

	// Insert directly so the timestamps are controlled.
	messageCollection := database.GetCollection(config.DB_Collection.Messages)
	older := models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    bob.ID,
		RecipientID: alice.ID,
		Content:     "First message",
		Timestamp:   time.Now().Add(-2 * time.Hour),
	}
	newer := models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    bob.ID,
		RecipientID: alice.ID,
		Content:     "Second message",
		Timestamp:   time.Now().Add(-1 * time.Hour),
	}
	// Addressed to bob, must not show up in alice's inbox.
	other := models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    alice.ID,
		RecipientID: bob.ID,
		Content:     "For bob only",
		Timestamp:   time.Now(),
	}
	for _, m := range []models.Message{older, newer, other} {
		_, err := messageCollection.InsertOne(context.Background(), m)
		suite.Require().NoError(err)
	}

	rr := suite.makeRequest(http.MethodGet, "/api/messages/received", aliceToken, nil, nil)
	suite.Equal(http.StatusOK, rr.Code)

	var inbox []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &inbox))
	suite.Require().Len(inbox, 2)

	// Newest first.
	suite.Equal("Second message", inbox[0]["content"])
	suite.Equal("First message", inbox[1]["content"])

	sender := inbox[0]["sender"].(map[string]interface{})
	suite.Equal("bob", sender["username"])
	suite.Equal(bob.ID.Hex(), sender["id"])
}

func (suite *APITestSuite) TestListReceived_Empty() {
	_, token := suite.createTestUser("alice", "alice@example.com", "secret123")

	rr := suite.makeRequest(http.MethodGet, "/api/messages/received", token, nil, nil)
	suite.Equal(http.StatusOK, rr.Code)

	var inbox []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &inbox))
	suite.Len(inbox, 0)
}
