package models

// Message is a direct message between two users. Participants holds both ids
// and is the query predicate for conversation listing. CreatedAt is assigned
// server-side; the document is immutable afterwards except for the read flag.
type Message struct {
	MessageID    string   `dynamodbav:"messageId" json:"messageId"`
	SenderID     string   `dynamodbav:"senderId" json:"senderId"`
	ReceiverID   string   `dynamodbav:"receiverId" json:"receiverId"`
	Text         string   `dynamodbav:"text" json:"text"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
	Read         bool     `dynamodbav:"read" json:"read"`
	Participants []string `dynamodbav:"participants,stringset" json:"participants"`
}

// MessagesCollection is the document collection for direct messages
const MessagesCollection = "messages"
