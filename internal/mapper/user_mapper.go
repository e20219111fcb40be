package mapper

import (
	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	return &model.User{
		Id:              e.Id,
		Email:           e.Email,
		Nombre:          e.Nombre,
		PasswordHash:    e.PasswordHash,
		ProfileImageURL: e.ProfileImageURL,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (m *UserMapper) ToEntity(mo *model.User) *entity.User {
	return &entity.User{
		Id:              mo.Id,
		Email:           mo.Email,
		Nombre:          mo.Nombre,
		PasswordHash:    mo.PasswordHash,
		ProfileImageURL: mo.ProfileImageURL,
		CreatedAt:       mo.CreatedAt,
		UpdatedAt:       mo.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}
