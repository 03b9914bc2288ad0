package repository

import (
	"context"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/shared/storage"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// The no-op store backs the offline operating mode (database driver "none").
// Every operation reports storage.ErrNotConfigured; the gateway turns that
// into its degraded result without treating it as a store failure.

type NoopTicketRepository struct{}

func NewNoopTicketRepository() *NoopTicketRepository {
	return &NoopTicketRepository{}
}

func (r *NoopTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return storage.ErrNotConfigured
}

func (r *NoopTicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return nil, storage.ErrNotConfigured
}

func (r *NoopTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, storage.ErrNotConfigured
}

func (r *NoopTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return storage.ErrNotConfigured
}

func (r *NoopTicketRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return false, storage.ErrNotConfigured
}

type NoopUserRepository struct{}

func NewNoopUserRepository() *NoopUserRepository {
	return &NoopUserRepository{}
}

func (r *NoopUserRepository) Save(ctx context.Context, u *user.User) error {
	return storage.ErrNotConfigured
}

func (r *NoopUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, storage.ErrNotConfigured
}

type NoopKnowledgeRepository struct{}

func NewNoopKnowledgeRepository() *NoopKnowledgeRepository {
	return &NoopKnowledgeRepository{}
}

func (r *NoopKnowledgeRepository) Save(ctx context.Context, e *knowledge.Entry) error {
	return storage.ErrNotConfigured
}

func (r *NoopKnowledgeRepository) FindAll(ctx context.Context) ([]*knowledge.Entry, error) {
	return nil, storage.ErrNotConfigured
}
