// Package knowledge serves knowledge-base reads and substring search over
// the persistence gateway.
package knowledge

import (
	"context"
	"time"

	"helpdesk/internal/application/gateway"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/logger"
)

type EntryDTO struct {
	ID        uint   `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toEntryDTOs(entries []*knowledge.Entry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = EntryDTO{
			ID:        e.ID(),
			Question:  e.Question(),
			Answer:    e.Answer(),
			Category:  e.Category(),
			CreatedAt: e.CreatedAt().Format(time.RFC3339),
			UpdatedAt: e.UpdatedAt().Format(time.RFC3339),
		}
	}
	return dtos
}

type Service struct {
	gateway *gateway.Gateway
	logger  logger.Interface
}

func NewService(gw *gateway.Gateway, log logger.Interface) *Service {
	return &Service{
		gateway: gw,
		logger:  log,
	}
}

func (s *Service) Entries(ctx context.Context) []EntryDTO {
	res := s.gateway.KnowledgeEntries(ctx)
	return toEntryDTOs(res.Value())
}

// Search filters the knowledge base by case-insensitive substring match
// against questions and answers. An unavailable store yields an empty
// result, never an error.
func (s *Service) Search(ctx context.Context, query string) []EntryDTO {
	res := s.gateway.KnowledgeEntries(ctx)
	return toEntryDTOs(knowledge.Search(query, res.Value()))
}
