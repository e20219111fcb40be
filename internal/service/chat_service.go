// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"errors"

	"consulta-ai-be/internal/dto"
	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/pkg/apperr"
	"consulta-ai-be/internal/pkg/logger"
	"consulta-ai-be/internal/repository/specification"
	"consulta-ai-be/internal/repository/unitofwork"
	"consulta-ai-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	Consultar(ctx context.Context, userId uuid.UUID, prompt string) (*dto.ConsultaResponse, error)
	Historial(ctx context.Context, userId uuid.UUID) ([]*dto.HistorialMessage, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		log:         log,
	}
}

// Consultar relays a single-turn prompt to the completion API and records
// both sides of the exchange. The user message is persisted before the
// outbound call, so a crash mid-call leaves a visible unanswered question
// instead of losing it. One attempt only; no retries.
func (s *chatService) Consultar(ctx context.Context, userId uuid.UUID, prompt string) (*dto.ConsultaResponse, error) {
	if prompt == "" {
		return nil, apperr.Validation(`El campo "prompt" es obligatorio`)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	userMessage := &entity.Message{
		UserId:  userId,
		Role:    entity.MessageRoleUser,
		Content: prompt,
	}
	if err := uow.MessageRepository().Append(ctx, userMessage); err != nil {
		return nil, err
	}

	// Only the current prompt is forwarded; prior turns are not used as
	// model context.
	answer, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			s.log.Error("chat", "Error de la API de completions", map[string]interface{}{
				"user_id": userId.String(),
				"error":   upstream.Message,
			})
			return nil, apperr.Upstream(upstream.Message, err)
		}
		s.log.Error("chat", "Fallo al procesar la consulta", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, apperr.Upstream("Error al procesar la consulta de IA", err)
	}

	assistantMessage := &entity.Message{
		UserId:  userId,
		Role:    entity.MessageRoleAssistant,
		Content: answer,
	}
	if err := uow.MessageRepository().Append(ctx, assistantMessage); err != nil {
		return nil, err
	}

	return &dto.ConsultaResponse{Response: answer}, nil
}

func (s *chatService) Historial(ctx context.Context, userId uuid.UUID) ([]*dto.HistorialMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	historial := make([]*dto.HistorialMessage, len(messages))
	for i, m := range messages {
		historial[i] = &dto.HistorialMessage{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		}
	}
	return historial, nil
}
