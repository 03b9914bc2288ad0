package gateway

import (
	"context"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc     func(ctx context.Context, t *ticket.Ticket) error
	FindAllFunc  func(ctx context.Context) ([]*ticket.Ticket, error)
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc   func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc   func(ctx context.Context, id uint) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type mockUserRepository struct {
	SaveFunc     func(ctx context.Context, u *user.User) error
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockKnowledgeRepository struct {
	SaveFunc    func(ctx context.Context, e *knowledge.Entry) error
	FindAllFunc func(ctx context.Context) ([]*knowledge.Entry, error)
}

func (m *mockKnowledgeRepository) Save(ctx context.Context, e *knowledge.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockKnowledgeRepository) FindAll(ctx context.Context) ([]*knowledge.Entry, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)     {}
func (m *mockLogger) Info(msg string, args ...any)      {}
func (m *mockLogger) Warn(msg string, args ...any)      {}
func (m *mockLogger) Error(msg string, args ...any)     {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
