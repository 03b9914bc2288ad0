package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/gateway"
	"helpdesk/internal/domain/classification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/repository"
	apperrors "helpdesk/internal/shared/errors"
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

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)     {}
func (m *mockLogger) Info(msg string, args ...any)      {}
func (m *mockLogger) Warn(msg string, args ...any)      {}
func (m *mockLogger) Error(msg string, args ...any)     {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }

func newService(repo ticket.Repository) *Service {
	gw := gateway.New(
		repo,
		repository.NewNoopUserRepository(),
		repository.NewNoopKnowledgeRepository(),
		&mockLogger{},
	)
	return NewService(gw, classification.NewClassifier(classification.DefaultTable()), &mockLogger{})
}

func TestService_CreateTicket_ClassifiesDescription(t *testing.T) {
	tests := []struct {
		name             string
		description      string
		expectedCategory string
	}{
		{
			name:             "account access",
			description:      "I forgot my password",
			expectedCategory: "account_access",
		},
		{
			name:             "billing",
			description:      "please refund my last payment",
			expectedCategory: "billing",
		},
		{
			name:             "no keyword falls back",
			description:      "just saying hello",
			expectedCategory: classification.FallbackCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *ticket.Ticket
			repo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					saved = tk
					return tk.SetID(1)
				},
			}
			svc := newService(repo)

			dto := svc.CreateTicket(context.Background(), CreateTicketCommand{
				Subject:     "Help",
				Description: tt.description,
			})

			require.NotNil(t, dto)
			assert.Equal(t, tt.expectedCategory, dto.Category)
			assert.Equal(t, "medium", dto.Priority, "missing priority defaults to medium")
			assert.Equal(t, "open", dto.Status)

			require.NotNil(t, saved)
			assert.Equal(t, tt.expectedCategory, saved.Category())
		})
	}
}

func TestService_CreateTicket_DegradedStoreStillReturnsTicket(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.New("store unreachable")
		},
	}
	svc := newService(repo)

	dto := svc.CreateTicket(context.Background(), CreateTicketCommand{
		Subject:     "Help",
		Description: "something is broken, this is a bug",
		Priority:    "urgent",
	})

	require.NotNil(t, dto, "degraded create must not return nil")
	assert.Zero(t, dto.ID, "no store-assigned id in degraded mode")
	assert.Equal(t, "bug_report", dto.Category)
	assert.Equal(t, "urgent", dto.Priority)
}

func TestService_ListTickets_DegradedStoreReturnsEmpty(t *testing.T) {
	repo := &mockTicketRepository{
		FindAllFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return nil, errors.New("store unreachable")
		},
	}
	svc := newService(repo)

	tickets := svc.ListTickets(context.Background())
	require.NotNil(t, tickets)
	assert.Empty(t, tickets)
}

func TestService_GetTicket_NotFound(t *testing.T) {
	svc := newService(&mockTicketRepository{})

	_, err := svc.GetTicket(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestService_UpdateTicket(t *testing.T) {
	stored := ticket.NewTicket("old subject", "desc", "medium", "billing")
	require.NoError(t, stored.SetID(5))

	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
	}
	svc := newService(repo)

	subject := "new subject"
	status := "resolved"
	dto, err := svc.UpdateTicket(context.Background(), 5, UpdateTicketCommand{
		Subject: &subject,
		Status:  &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "new subject", dto.Subject)
	assert.Equal(t, "resolved", dto.Status)
	assert.Equal(t, "billing", dto.Category, "category untouched by update")
}

func TestService_UpdateTicket_InvalidStatusRejected(t *testing.T) {
	stored := ticket.NewTicket("s", "d", "medium", "")
	require.NoError(t, stored.SetID(5))

	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
	}
	svc := newService(repo)

	bad := "archived"
	_, err := svc.UpdateTicket(context.Background(), 5, UpdateTicketCommand{Status: &bad})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestService_DeleteTicket(t *testing.T) {
	t.Run("confirmed miss is not found", func(t *testing.T) {
		svc := newService(&mockTicketRepository{})

		_, err := svc.DeleteTicket(context.Background(), 9)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("degraded delete reports false without error", func(t *testing.T) {
		repo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, errors.New("store unreachable")
			},
		}
		svc := newService(repo)

		deleted, err := svc.DeleteTicket(context.Background(), 9)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
