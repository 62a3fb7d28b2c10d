package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/chatbot"
	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
	"github.com/jimmy00415/ChefWeb-sub000/internal/validation"
)

const (
	sourceRules     = "rules"
	sourceAssistant = "assistant"
	assistTimeout   = 8 * time.Second
	chatLogTimeout  = 5 * time.Second

	maxLoggedMessage = 1000
)

// ChatService answers chat widget messages.
type ChatService struct {
	generator  *chatbot.Generator
	assistant  Assistant
	repo       repository.Repository
	background *Background
	logMessage bool
	logger     *zap.Logger
}

// NewChatService creates a chat service. assistant and repo may be nil.
func NewChatService(generator *chatbot.Generator, assistant Assistant, repo repository.Repository, background *Background, logMessages bool, logger *zap.Logger) *ChatService {
	return &ChatService{
		generator:  generator,
		assistant:  assistant,
		repo:       repo,
		background: background,
		logMessage: logMessages && repo != nil,
		logger:     logger,
	}
}

// Reply answers a message. It always returns a usable reply; assistant
// failures fall back to the canned response.
func (s *ChatService) Reply(ctx context.Context, message string) chatbot.Reply {
	reply := s.generator.Generate(message)
	source := sourceRules

	if reply.Intent == chatbot.FallbackName && s.assistant != nil && chatbot.Normalize(message) != "" {
		actx, cancel := context.WithTimeout(ctx, assistTimeout)
		suggestion, err := s.assistant.Suggest(actx, message)
		cancel()

		if err != nil {
			s.logger.Warn("Assistant unavailable, using canned reply", zap.Error(err))
		} else {
			reply.Response = suggestion.Response
			if len(suggestion.QuickReplies) > 0 {
				reply.QuickReplies = suggestion.QuickReplies
			}
			source = sourceAssistant
		}
	}

	s.logger.Debug("Chat reply",
		zap.String("intent", reply.Intent),
		zap.Float64("confidence", reply.Confidence),
		zap.String("source", source),
	)

	if s.logMessage {
		entry := &model.ChatLog{
			ID:         uuid.NewString(),
			Message:    validation.Clamp(message, maxLoggedMessage),
			Intent:     reply.Intent,
			Confidence: reply.Confidence,
			Source:     source,
			CreatedAt:  time.Now().UTC(),
		}
		s.background.Go("chat-log", chatLogTimeout, func(ctx context.Context) error {
			return s.repo.LogChat(ctx, entry)
		})
	}

	return reply
}
