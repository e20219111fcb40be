// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"strings"
	"time"

	"consulta-ai-be/internal/dto"
	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/pkg/apperr"
	"consulta-ai-be/internal/pkg/logger"
	"consulta-ai-be/internal/pkg/token"
	"consulta-ai-be/internal/repository/specification"
	"consulta-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *token.Manager
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *token.Manager, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		log:        log,
	}
}

// NormalizeEmail applies the identity rule for the users table: emails are
// compared and stored trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	email := NormalizeEmail(req.Email)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		Nombre:       req.Nombre,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := s.tokens.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "Nuevo usuario registrado", map[string]interface{}{
		"user_id": user.Id.String(),
	})

	return &dto.AuthResponse{
		Message: "Usuario registrado exitosamente",
		Token:   signed,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: NormalizeEmail(req.Email)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.ErrBadCredentials
	}

	signed, err := s.tokens.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "Usuario autenticado", map[string]interface{}{
		"user_id": user.Id.String(),
	})

	return &dto.AuthResponse{
		Message: "Login exitoso",
		Token:   signed,
	}, nil
}
