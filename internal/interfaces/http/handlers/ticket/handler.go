// Package ticket exposes the ticket REST surface.
package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apptk "helpdesk/internal/application/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

var errInvalidTicketID = errors.NewBadRequestError("invalid ticket id")

type Handler struct {
	service *apptk.Service
	logger  logger.Interface
}

func NewHandler(service *apptk.Service) *Handler {
	return &Handler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// ListTickets handles GET /api/tickets.
func (h *Handler) ListTickets(c *gin.Context) {
	tickets := h.service.ListTickets(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// CreateTicket handles POST /api/tickets. Intake succeeds even when the
// store is degraded; the created ticket is always returned.
func (h *Handler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket payload")
		return
	}

	dto := h.service.CreateTicket(c.Request.Context(), req.ToCommand())
	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket created",
		"ticket":  dto,
	})
}

// GetTicket handles GET /api/tickets/:id.
func (h *Handler) GetTicket(c *gin.Context) {
	id, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.service.GetTicket(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": dto})
}

// UpdateTicket handles PATCH /api/tickets/:id.
func (h *Handler) UpdateTicket(c *gin.Context) {
	id, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest,
			utils.ValidationMessage(err, "invalid ticket update payload"))
		return
	}

	dto, err := h.service.UpdateTicket(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket updated",
		"ticket":  dto,
	})
}

// DeleteTicket handles DELETE /api/tickets/:id.
func (h *Handler) DeleteTicket(c *gin.Context) {
	id, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.service.DeleteTicket(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errInvalidTicketID
	}
	return uint(id), nil
}
