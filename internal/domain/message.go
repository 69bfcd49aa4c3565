package domain

import "time"

const (
	MessageTypeText = "TEXT"

	// NoMessagesPreview aparece na lista enquanto a conversa não tem mensagens
	NoMessagesPreview = "No messages yet."
)

type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Participant é a visão pública do outro usuário da conversa
type Participant struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ConversationSummary struct {
	ID                   string      `json:"id"`
	Participant          Participant `json:"participant"`
	LastMessage          string      `json:"lastMessage"`
	LastMessageTimestamp time.Time   `json:"lastMessageTimestamp"`
}

type ConversationDetail struct {
	ID          string       `json:"id"`
	Messages    []*Message   `json:"messages"`
	Participant *Participant `json:"participant"`
}

type StartConversationRequest struct {
	ParticipantID string `json:"participantId"`
}

type SendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Content        string `json:"content"`
}
