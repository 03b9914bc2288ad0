// Package knowledge exposes knowledge-base reads and search.
package knowledge

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appkb "helpdesk/internal/application/knowledge"
)

type Handler struct {
	service *appkb.Service
}

func NewHandler(service *appkb.Service) *Handler {
	return &Handler{service: service}
}

// ListEntries handles GET /api/knowledge.
func (h *Handler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.service.Entries(c.Request.Context())})
}

// SearchEntries handles GET /api/knowledge/search?q=. An empty query
// matches everything, same as listing.
func (h *Handler) SearchEntries(c *gin.Context) {
	entries := h.service.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
