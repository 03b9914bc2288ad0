package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
)

type KnowledgeRepository struct {
	db     *gorm.DB
	mapper mappers.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		mapper: mappers.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepository) Save(ctx context.Context, e *knowledge.Entry) error {
	model := r.mapper.ToModel(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save knowledge entry: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *KnowledgeRepository) FindAll(ctx context.Context) ([]*knowledge.Entry, error) {
	var entryModels []models.KnowledgeEntryModel

	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}

	entries := make([]*knowledge.Entry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = r.mapper.ToDomain(&model)
	}

	return entries, nil
}
