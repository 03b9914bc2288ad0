// Package user exposes the user REST surface.
package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appuser "helpdesk/internal/application/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

type Handler struct {
	service *appuser.Service
	logger  logger.Interface
}

func NewHandler(service *appuser.Service) *Handler {
	return &Handler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest,
			utils.ValidationMessage(err, "email and name are required"))
		return
	}

	dto := h.service.CreateUser(c.Request.Context(), req.Email, req.Name)
	c.JSON(http.StatusCreated, gin.H{"user": dto})
}

// GetUser handles GET /api/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid user id"))
		return
	}

	dto, err := h.service.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto})
}
