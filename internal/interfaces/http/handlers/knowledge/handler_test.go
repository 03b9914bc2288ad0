package knowledge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/gateway"
	appkb "helpdesk/internal/application/knowledge"
	domkb "helpdesk/internal/domain/knowledge"
	domtk "helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockKnowledgeRepository struct {
	FindAllFunc func(ctx context.Context) ([]*domkb.Entry, error)
}

func (m *mockKnowledgeRepository) Save(ctx context.Context, e *domkb.Entry) error { return nil }
func (m *mockKnowledgeRepository) FindAll(ctx context.Context) ([]*domkb.Entry, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct{}

func (m *mockTicketRepository) Save(ctx context.Context, t *domtk.Ticket) error { return nil }
func (m *mockTicketRepository) FindAll(ctx context.Context) ([]*domtk.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*domtk.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) Update(ctx context.Context, t *domtk.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

type mockUserRepository struct{}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)     {}
func (m *mockLogger) Info(msg string, args ...any)      {}
func (m *mockLogger) Warn(msg string, args ...any)      {}
func (m *mockLogger) Error(msg string, args ...any)     {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }

func sampleEntries() []*domkb.Entry {
	now := time.Now()
	return []*domkb.Entry{
		domkb.ReconstructEntry(1, "How do I reset my password?", "Use the Forgot Password link.", "account_access", now, now),
		domkb.ReconstructEntry(2, "How do I request a refund?", "Refunds can be requested from the billing page.", "billing", now, now),
	}
}

func setupRouter(repo *mockKnowledgeRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	gw := gateway.New(&mockTicketRepository{}, &mockUserRepository{}, repo, &mockLogger{})
	handler := NewHandler(appkb.NewService(gw, &mockLogger{}))

	router := gin.New()
	router.GET("/api/knowledge", handler.ListEntries)
	router.GET("/api/knowledge/search", handler.SearchEntries)

	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListEntries(t *testing.T) {
	router := setupRouter(&mockKnowledgeRepository{
		FindAllFunc: func(ctx context.Context) ([]*domkb.Entry, error) {
			return sampleEntries(), nil
		},
	})

	w := get(router, "/api/knowledge")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response["entries"], 2)
	assert.Equal(t, "How do I reset my password?", response["entries"][0]["question"])
}

func TestSearchEntries_FiltersBySubstring(t *testing.T) {
	router := setupRouter(&mockKnowledgeRepository{
		FindAllFunc: func(ctx context.Context) ([]*domkb.Entry, error) {
			return sampleEntries(), nil
		},
	})

	w := get(router, "/api/knowledge/search?q=REFUND")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response["entries"], 1)
	assert.Equal(t, "billing", response["entries"][0]["category"])
}

func TestSearchEntries_NoMatchesEmptyList(t *testing.T) {
	router := setupRouter(&mockKnowledgeRepository{
		FindAllFunc: func(ctx context.Context) ([]*domkb.Entry, error) {
			return sampleEntries(), nil
		},
	})

	w := get(router, "/api/knowledge/search?q=vpn")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}

func TestListEntries_DegradedStoreReturnsEmptyList(t *testing.T) {
	router := setupRouter(&mockKnowledgeRepository{
		FindAllFunc: func(ctx context.Context) ([]*domkb.Entry, error) {
			return nil, context.DeadlineExceeded
		},
	})

	w := get(router, "/api/knowledge")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}
