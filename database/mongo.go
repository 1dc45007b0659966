package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/attajnr2001/adwumawura-2/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoCtx = context.Background()

func Connect() (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(MongoCtx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("MongoDB connection failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Println("✅ Connected to MongoDB")

	MongoClient = client
	return client, nil
}

func GetCollection(collectionName config.CollectionName) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.MongoDB).Collection(string(collectionName))
}

// EnsureIndexes creates the unique and lookup indexes the application relies on.
// Username and email uniqueness is enforced here rather than in application code.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(MongoCtx, 15*time.Second)
	defer cancel()

	users := GetCollection(config.DB_Collection.Users)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %v", err)
	}

	jobs := GetCollection(config.DB_Collection.Jobs)
	_, err = jobs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "postedBy.userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating job indexes: %v", err)
	}

	messages := GetCollection(config.DB_Collection.Messages)
	_, err = messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("creating message indexes: %v", err)
	}

	return nil
}

func Disconnect() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(MongoCtx); err != nil {
			log.Fatalf("❌ MongoDB Disconnection Error: %v", err)
		}
		log.Println("✅ MongoDB Disconnected")
	}
}
