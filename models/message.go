package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SenderID    primitive.ObjectID `json:"senderId" bson:"senderId"`
	RecipientID primitive.ObjectID `json:"recipientId" bson:"recipientId"`
	Content     string             `json:"content" bson:"content"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}

// MessageSender is the expanded sender reference attached to received messages.
type MessageSender struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Username string             `json:"username"`
	Phone    string             `json:"phone,omitempty"`
	Address  string             `json:"address,omitempty"`
}

// MessageView is a received message with its sender expanded.
type MessageView struct {
	ID        primitive.ObjectID `json:"id"`
	Sender    MessageSender      `json:"sender"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
}
