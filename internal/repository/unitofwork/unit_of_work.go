package unitofwork

import (
	"context"

	"consulta-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MessageRepository() contract.MessageRepository
}
