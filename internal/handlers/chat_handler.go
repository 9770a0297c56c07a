package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"sidequest/internal/dto"
	"sidequest/internal/errors"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles conversation endpoints and the streamed completion endpoint
type ChatHandler struct {
	chatService       services.ChatServiceInterface
	completionService services.CompletionServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	chatService services.ChatServiceInterface,
	completionService services.CompletionServiceInterface,
) *ChatHandler {
	return &ChatHandler{
		chatService:       chatService,
		completionService: completionService,
	}
}

// ListConversations returns the user's conversations, most recently active first
//
// GET /api/v1/conversations
func (h *ChatHandler) ListConversations(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	conversations, err := h.chatService.ListConversations(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, conversations)
}

// CreateConversation starts a new conversation seeded with its first message
//
// POST /api/v1/conversations
func (h *ChatHandler) CreateConversation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	conversation, err := h.chatService.CreateConversation(userID, req.Message)
	if err != nil {
		if stderrors.Is(err, services.ErrEmptyMessage) {
			return SendError(c, errors.ChatEmptyMessage)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, conversation)
}

// GetConversation returns a conversation with its full transcript
//
// GET /api/v1/conversations/:id
func (h *ChatHandler) GetConversation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Conversation ID must be a valid UUID"))
	}

	conversation, err := h.chatService.GetConversation(userID, conversationID)
	if err != nil {
		if stderrors.Is(err, services.ErrConversationNotFound) {
			return SendError(c, errors.ChatConversationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, conversation)
}

// AddMessage appends a message to an existing conversation
//
// POST /api/v1/conversations/:id/messages
func (h *ChatHandler) AddMessage(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Conversation ID must be a valid UUID"))
	}

	var req dto.AddMessageRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	message, err := h.chatService.AddMessage(userID, conversationID, req.Role, req.Content)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrConversationNotFound):
			return SendError(c, errors.ChatConversationNotFound)
		case stderrors.Is(err, services.ErrEmptyMessage):
			return SendError(c, errors.ChatEmptyMessage)
		case stderrors.Is(err, services.ErrInvalidMessageRole):
			return SendError(c, errors.ChatInvalidRole)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, message)
}

// DeleteConversation removes a conversation and its transcript
//
// DELETE /api/v1/conversations/:id
func (h *ChatHandler) DeleteConversation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Conversation ID must be a valid UUID"))
	}

	if err := h.chatService.DeleteConversation(userID, conversationID); err != nil {
		if stderrors.Is(err, services.ErrConversationNotFound) {
			return SendError(c, errors.ChatConversationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Completion streams an assistant reply for the supplied transcript.
// Each chunk is written as a "0:<json-encoded-text>\n" line so the client can
// render tokens as they arrive. Persisting the finished reply is the client's
// follow-up AddMessage call.
//
// POST /api/chat
func (h *ChatHandler) Completion(c echo.Context) error {
	_, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.CompletionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if !h.completionService.Enabled() {
		return SendError(c, errors.ChatNotConfigured)
	}

	resp := c.Response()
	started := false

	_, err = h.completionService.StreamCompletion(c.Request().Context(), req.Messages, func(delta string) error {
		if !started {
			resp.Header().Set(echo.HeaderContentType, "text/event-stream")
			resp.Header().Set("Cache-Control", "no-cache")
			resp.Header().Set("Connection", "keep-alive")
			resp.WriteHeader(http.StatusOK)
			started = true
		}

		chunk, err := json.Marshal(delta)
		if err != nil {
			return fmt.Errorf("failed to encode chunk: %w", err)
		}
		if _, err := fmt.Fprintf(resp, "0:%s\n", chunk); err != nil {
			return err
		}
		resp.Flush()
		return nil
	})
	if err != nil {
		// Once chunks have been written the status line is gone; the client
		// detects the truncated stream on its own.
		if started {
			return nil
		}
		if stderrors.Is(err, services.ErrChatNotConfigured) {
			return SendError(c, errors.ChatNotConfigured)
		}
		return SendError(c, errors.ChatCompletionFailed)
	}

	if !started {
		// Provider returned an empty stream; still answer with the framing the
		// client expects.
		resp.Header().Set(echo.HeaderContentType, "text/event-stream")
		resp.Header().Set("Cache-Control", "no-cache")
		resp.WriteHeader(http.StatusOK)
	}

	return nil
}
