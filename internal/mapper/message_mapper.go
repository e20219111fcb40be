package mapper

import (
	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToModel(e *entity.Message) *model.Message {
	return &model.Message{
		Id:        e.Id,
		UserId:    e.UserId,
		Role:      string(e.Role),
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MessageMapper) ToEntity(mo *model.Message) *entity.Message {
	return &entity.Message{
		Id:        mo.Id,
		UserId:    mo.UserId,
		Role:      entity.MessageRole(mo.Role),
		Content:   mo.Content,
		CreatedAt: mo.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}
