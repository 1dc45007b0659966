package repositories

import (
	"context"
	"log"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateMessage(message *models.Message) error {
	messageCollection := database.GetCollection(config.DB_Collection.Messages)
	res, err := messageCollection.InsertOne(context.Background(), message)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		message.ID = oid
	}
	return nil
}

// ListReceived returns the messages addressed to recipientID, newest first.
func ListReceived(recipientID primitive.ObjectID) ([]models.Message, error) {
	messageCollection := database.GetCollection(config.DB_Collection.Messages)

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := messageCollection.Find(context.Background(), bson.M{"recipientId": recipientID}, opts)
	if err != nil {
		log.Println("Error listing messages:", err)
		return nil, err
	}
	defer cursor.Close(context.Background())

	messages := []models.Message{}
	if err := cursor.All(context.Background(), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
