package mappers

import (
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/persistence/models"
)

type KnowledgeMapper interface {
	ToModel(e *knowledge.Entry) *models.KnowledgeEntryModel
	ToDomain(model *models.KnowledgeEntryModel) *knowledge.Entry
}

type KnowledgeMapperImpl struct{}

func NewKnowledgeMapper() KnowledgeMapper {
	return &KnowledgeMapperImpl{}
}

func (m *KnowledgeMapperImpl) ToModel(e *knowledge.Entry) *models.KnowledgeEntryModel {
	return &models.KnowledgeEntryModel{
		ID:        e.ID(),
		Question:  e.Question(),
		Answer:    e.Answer(),
		Category:  e.Category(),
		CreatedAt: e.CreatedAt().UnixMilli(),
		UpdatedAt: e.UpdatedAt().UnixMilli(),
	}
}

func (m *KnowledgeMapperImpl) ToDomain(model *models.KnowledgeEntryModel) *knowledge.Entry {
	return knowledge.ReconstructEntry(
		model.ID,
		model.Question,
		model.Answer,
		model.Category,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
