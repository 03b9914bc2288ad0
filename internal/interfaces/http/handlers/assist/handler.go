// Package assist exposes the AI-style triage endpoints: classify free text
// and render a templated reply.
package assist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/triage"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// A missing query or text is treated as empty input, which classifies to
// the fallback category; intake never rejects a well-formed request.
type RespondRequest struct {
	Query string `json:"query"`
}

type ClassifyRequest struct {
	Text string `json:"text"`
}

type Handler struct {
	service *triage.Service
	logger  logger.Interface
}

func NewHandler(service *triage.Service) *Handler {
	return &Handler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// Respond handles POST /api/ai/respond.
func (h *Handler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for respond", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	response, classification := h.service.Respond(req.Query)
	c.JSON(http.StatusOK, gin.H{
		"response":       response,
		"classification": classification,
	})
}

// Classify handles POST /api/ai/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for classify", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	c.JSON(http.StatusOK, gin.H{"classification": h.service.Classify(req.Text)})
}
