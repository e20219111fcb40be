package contract

import (
	"context"

	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error
	UpdateProfileImageURL(ctx context.Context, id uuid.UUID, url string) error
}
