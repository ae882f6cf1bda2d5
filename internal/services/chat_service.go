package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/chat"
	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/repositories"
)

// ErrMessageRequired is returned when the chatbot is called with no message.
var ErrMessageRequired = errors.New("chat: message is required")

// ChatService proxies visitor prompts to the completion API and persists the
// exchange.
type ChatService struct {
	completer chat.Completer
	messages  repositories.ChatMessageRepository
	logger    *zap.Logger
	clock     func() time.Time
}

// ChatServiceDeps lists the dependencies for NewChatService.
type ChatServiceDeps struct {
	Completer chat.Completer
	Messages  repositories.ChatMessageRepository
	Logger    *zap.Logger
	Clock     func() time.Time
}

// NewChatService wires the chat service.
func NewChatService(deps ChatServiceDeps) (*ChatService, error) {
	if deps.Completer == nil {
		return nil, errors.New("chat: completer is required")
	}
	if deps.Messages == nil {
		return nil, errors.New("chat: message repository is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	wrapped := func() time.Time { return clock().UTC() }
	return &ChatService{
		completer: deps.Completer,
		messages:  deps.Messages,
		logger:    logger,
		clock:     wrapped,
	}, nil
}

// Ask sends the prompt upstream and stores the exchange. Upstream failures
// are folded into the reply text rather than surfaced as request errors.
func (s *ChatService) Ask(ctx context.Context, sessionID, prompt string) (domain.ChatMessage, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return domain.ChatMessage{}, ErrMessageRequired
	}

	reply, model, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("chat completion failed", zap.Error(err))
		reply = fmt.Sprintf("Error processing request: %v", err)
	}

	msg := domain.ChatMessage{
		SessionID: sessionID,
		Prompt:    prompt,
		Reply:     reply,
		Model:     model,
		CreatedAt: s.clock(),
	}
	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("chat: persist message: %w", err)
	}
	return created, nil
}
