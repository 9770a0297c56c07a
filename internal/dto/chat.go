package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry of a conversation transcript as sent by the client
type ChatMessage struct {
	Role    string `json:"role" validate:"required,chat_role"`
	Content string `json:"content" validate:"required,min=1"`
}

// CompletionRequest carries the running transcript for a streamed completion
type CompletionRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// CreateConversationRequest starts a new conversation with its first message
type CreateConversationRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// AddMessageRequest appends a message to an existing conversation
type AddMessageRequest struct {
	Role    string `json:"role" validate:"required,chat_role"`
	Content string `json:"content" validate:"required,min=1"`
}

// ConversationResponse represents a stored conversation
type ConversationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse represents a stored transcript message
type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConversationWithMessagesResponse bundles a conversation with its transcript
type ConversationWithMessagesResponse struct {
	Conversation ConversationResponse `json:"conversation"`
	Messages     []MessageResponse    `json:"messages"`
}

// ListConversationsResponse represents the response for listing conversations
type ListConversationsResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int                    `json:"total"`
}
