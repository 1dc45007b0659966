package services

import (
	"errors"
	"time"

	messagedto "github.com/attajnr2001/adwumawura-2/dto/message"
	"github.com/attajnr2001/adwumawura-2/models"
	"github.com/attajnr2001/adwumawura-2/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingMessageFields = errors.New("recipient ID and content are required")
	ErrRecipientNotFound    = errors.New("recipient not found")
)

type MessageService struct{}

func (ms *MessageService) SendMessage(sender *models.User, data messagedto.MessageSendDTO) (*models.Message, error) {
	if data.RecipientID == "" || data.Content == "" {
		return nil, ErrMissingMessageFields
	}

	recipientOID, err := primitive.ObjectIDFromHex(data.RecipientID)
	if err != nil {
		return nil, ErrRecipientNotFound
	}

	recipient, err := repositories.GetUserByID(recipientOID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	message := &models.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Content:     data.Content,
		Timestamp:   time.Now(),
	}

	if err := repositories.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListReceived returns the user's inbox, newest first, senders expanded.
func (ms *MessageService) ListReceived(user *models.User) ([]models.MessageView, error) {
	messages, err := repositories.ListReceived(user.ID)
	if err != nil {
		return nil, err
	}

	idSet := map[primitive.ObjectID]bool{}
	for _, m := range messages {
		idSet[m.SenderID] = true
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	senders, err := repositories.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.User, len(senders))
	for _, s := range senders {
		byID[s.ID] = s
	}

	views := make([]models.MessageView, 0, len(messages))
	for _, m := range messages {
		view := models.MessageView{
			ID:        m.ID,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
		if sender, ok := byID[m.SenderID]; ok {
			view.Sender = models.MessageSender{
				ID:       sender.ID,
				Name:     sender.Name,
				Username: sender.Username,
				Phone:    sender.Phone,
				Address:  sender.Address,
			}
		} else {
			view.Sender = models.MessageSender{ID: m.SenderID}
		}
		views = append(views, view)
	}
	return views, nil
}
