// FILE: internal/service/user_service.go
package service

import (
	"context"

	"consulta-ai-be/internal/dto"
	"consulta-ai-be/internal/pkg/apperr"
	"consulta-ai-be/internal/pkg/logger"
	"consulta-ai-be/internal/repository/specification"
	"consulta-ai-be/internal/repository/unitofwork"
	"consulta-ai-be/pkg/uploader"

	"github.com/google/uuid"
)

type IUserService interface {
	GetPerfil(ctx context.Context, userId uuid.UUID) (*dto.PerfilResponse, error)
	UpdatePerfil(ctx context.Context, userId uuid.UUID, req *dto.UpdatePerfilRequest) (*dto.PerfilResponse, error)
	UploadFoto(ctx context.Context, userId uuid.UUID, data []byte, mimeType string) (string, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	uploader   uploader.Uploader
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, up uploader.Uploader, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		uploader:   up,
		log:        log,
	}
}

func (s *userService) GetPerfil(ctx context.Context, userId uuid.UUID) (*dto.PerfilResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	return &dto.PerfilResponse{
		Nombre:          user.Nombre,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}, nil
}

func (s *userService) UpdatePerfil(ctx context.Context, userId uuid.UUID, req *dto.UpdatePerfilRequest) (*dto.PerfilResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	if err := uow.UserRepository().UpdateNombre(ctx, userId, req.Nombre); err != nil {
		return nil, err
	}

	return &dto.PerfilResponse{
		Nombre:          req.Nombre,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}, nil
}

// UploadFoto pushes the image to the external host first; the user record is
// only touched after the upload succeeded, so a remote failure leaves no
// partial state.
func (s *userService) UploadFoto(ctx context.Context, userId uuid.UUID, data []byte, mimeType string) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.ErrUserNotFound
	}

	url, err := s.uploader.Upload(ctx, data, mimeType)
	if err != nil {
		s.log.Error("user", "Error al subir imagen de perfil", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return "", apperr.Upstream("Error al subir la imagen", err)
	}

	if err := uow.UserRepository().UpdateProfileImageURL(ctx, userId, url); err != nil {
		// Remote upload already happened; the orphaned image is accepted.
		return "", err
	}

	return url, nil
}
