package knowledge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/gateway"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

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

func newService(repo knowledge.Repository) *Service {
	gw := gateway.New(
		repository.NewNoopTicketRepository(),
		repository.NewNoopUserRepository(),
		repo,
		&mockLogger{},
	)
	return NewService(gw, &mockLogger{})
}

func seededRepo() *mockKnowledgeRepository {
	now := time.Now()
	entries := []*knowledge.Entry{
		knowledge.ReconstructEntry(1, "How do I request a refund?", "Go to Billing.", "billing", now, now),
		knowledge.ReconstructEntry(2, "How do I reset my password?", "Use the Forgot Password link.", "account_access", now, now),
	}
	return &mockKnowledgeRepository{
		FindAllFunc: func(ctx context.Context) ([]*knowledge.Entry, error) {
			return entries, nil
		},
	}
}

func TestService_Search(t *testing.T) {
	svc := newService(seededRepo())

	results := svc.Search(context.Background(), "refund")
	require.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ID)
	assert.Contains(t, results[0].Question, "refund")
}

func TestService_Search_EmptyKnowledgeBase(t *testing.T) {
	svc := newService(&mockKnowledgeRepository{})

	results := svc.Search(context.Background(), "refund")
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestService_Search_DegradedStoreReturnsEmpty(t *testing.T) {
	repo := &mockKnowledgeRepository{
		FindAllFunc: func(ctx context.Context) ([]*knowledge.Entry, error) {
			return nil, errors.New("store unreachable")
		},
	}
	svc := newService(repo)

	results := svc.Search(context.Background(), "refund")
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestService_Entries(t *testing.T) {
	svc := newService(seededRepo())

	entries := svc.Entries(context.Background())
	require.Len(t, entries, 2)
	assert.Equal(t, "billing", entries[0].Category)
}
