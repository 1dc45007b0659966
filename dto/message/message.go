package message

// MessageSendDTO is the body of a direct message send.
type MessageSendDTO struct {
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}
