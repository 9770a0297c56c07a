package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"sidequest/internal/config"
	"sidequest/internal/dto"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrChatNotConfigured  = errors.New("chat completion provider is not configured")
	ErrCompletionUpstream = errors.New("completion provider request failed")
)

const financeAssistantPrompt = "You are a personal finance assistant. " +
	"Help the user understand their spending, income and budgeting. " +
	"Be concise and practical."

// CompletionService streams assistant replies from the OpenAI API. When no
// API key is configured the service stays disabled and every call fails
// with ErrChatNotConfigured.
type CompletionService struct {
	client  *openai.Client
	cfg     config.OpenAIConfig
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewCompletionService creates a completion service from OpenAI configuration
func NewCompletionService(cfg config.OpenAIConfig, metrics MetricsRecorderInterface, logger *slog.Logger) CompletionServiceInterface {
	service := &CompletionService{
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}

	if cfg.APIKey == "" {
		return service
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	service.client = openai.NewClientWithConfig(clientConfig)

	return service
}

// Enabled reports whether an upstream provider is configured
func (s *CompletionService) Enabled() bool {
	return s.client != nil
}

// StreamCompletion requests a streamed completion for the transcript and
// pushes each content delta through onDelta as it arrives. The assembled
// reply is returned once the stream ends.
func (s *CompletionService) StreamCompletion(ctx context.Context, messages []dto.ChatMessage, onDelta func(delta string) error) (string, error) {
	if !s.Enabled() {
		return "", ErrChatNotConfigured
	}

	started := time.Now()

	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: float32(s.cfg.Temperature),
		Stream:      true,
		Messages:    buildCompletionMessages(messages),
	})
	if err != nil {
		s.recordCompletion("failed", started)
		return "", fmt.Errorf("%w: %v", ErrCompletionUpstream, err)
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.recordCompletion("failed", started)
			return "", fmt.Errorf("%w: %v", ErrCompletionUpstream, err)
		}

		if len(response.Choices) == 0 {
			continue
		}

		delta := response.Choices[0].Delta.Content
		if delta == "" {
			continue
		}

		reply.WriteString(delta)
		if err := onDelta(delta); err != nil {
			// Client went away; the partial reply is still usable
			s.logger.Debug("completion delta delivery stopped", "error", err)
			break
		}
	}

	s.recordCompletion("success", started)

	return reply.String(), nil
}

func (s *CompletionService) recordCompletion(status string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("chat_completion", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("chat_completion", time.Since(started))
}

// buildCompletionMessages prepends the assistant system prompt to the
// client-supplied transcript.
func buildCompletionMessages(messages []dto.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	out = append(out, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: financeAssistantPrompt,
	})

	for _, message := range messages {
		role := openai.ChatMessageRoleUser
		if message.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: message.Content,
		})
	}

	return out
}
