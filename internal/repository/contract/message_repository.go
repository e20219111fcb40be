package contract

import (
	"context"

	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/repository/specification"
)

// MessageRepository is append-only; conversation turns are never updated or
// deleted once written.
type MessageRepository interface {
	Append(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
