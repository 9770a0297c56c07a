package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message content cannot be empty")
	ErrInvalidMessageRole   = errors.New("invalid message role")
)

// ChatService manages conversations and their transcripts
type ChatService struct {
	conversationRepo repositories.ConversationRepositoryInterface
	messageRepo      repositories.MessageRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	conversationRepo repositories.ConversationRepositoryInterface,
	messageRepo repositories.MessageRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ChatServiceInterface {
	return &ChatService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// ListConversations returns the user's conversations, most recently active first
func (s *ChatService) ListConversations(userID uuid.UUID) (*dto.ListConversationsResponse, error) {
	conversations, err := s.conversationRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		responses = append(responses, toConversationResponse(&conversations[i]))
	}

	return &dto.ListConversationsResponse{
		Conversations: responses,
		Total:         len(responses),
	}, nil
}

// CreateConversation starts a new conversation titled after its first
// message and stores that message as the opening user turn. If storing the
// message fails, the conversation is deleted again so no empty threads
// survive.
func (s *ChatService) CreateConversation(userID uuid.UUID, message string) (*dto.ConversationResponse, error) {
	content := strings.TrimSpace(message)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	conversation := &models.Conversation{
		UserID: userID,
		Title:  models.TitleFromMessage(content),
	}

	if err := s.conversationRepo.Create(conversation); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	firstMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.MessageRoleUser,
		Content:        content,
	}

	if err := s.messageRepo.Create(firstMessage); err != nil {
		if deleteErr := s.conversationRepo.Delete(conversation.ID, userID); deleteErr != nil {
			s.logger.Error("failed to delete conversation after message failure",
				"error", deleteErr,
				"conversation_id", conversation.ID)
		}
		return nil, fmt.Errorf("failed to store first message: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("conversation_created", nil)
	}

	response := toConversationResponse(conversation)
	return &response, nil
}

// GetConversation returns a conversation with its transcript in chronological order
func (s *ChatService) GetConversation(userID, conversationID uuid.UUID) (*dto.ConversationWithMessagesResponse, error) {
	conversation, err := s.conversationRepo.GetByID(conversationID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	messages, err := s.messageRepo.GetByConversationID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}

	return &dto.ConversationWithMessagesResponse{
		Conversation: toConversationResponse(conversation),
		Messages:     responses,
	}, nil
}

// AddMessage appends a message to a conversation the user owns and bumps
// the conversation's activity timestamp.
func (s *ChatService) AddMessage(userID, conversationID uuid.UUID, role, content string) (*dto.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	if !models.IsValidMessageRole(role) {
		return nil, ErrInvalidMessageRole
	}

	if _, err := s.conversationRepo.GetByID(conversationID, userID); err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	message := &models.Message{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := s.conversationRepo.Touch(conversationID); err != nil {
		// Non-critical: ordering drift only
		s.logger.Warn("failed to touch conversation",
			"error", err,
			"conversation_id", conversationID)
	}

	response := toMessageResponse(message)
	return &response, nil
}

// DeleteConversation removes a conversation and its messages
func (s *ChatService) DeleteConversation(userID, conversationID uuid.UUID) error {
	if err := s.conversationRepo.Delete(conversationID, userID); err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	return nil
}

func toConversationResponse(conversation *models.Conversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		ID:        conversation.ID,
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
	}
}

func toMessageResponse(message *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		Role:           message.Role,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}
}
