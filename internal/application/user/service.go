// Package user implements the minimal user service: create and read.
package user

import (
	"context"
	"time"

	"helpdesk/internal/application/gateway"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
	}
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

// CreateUser persists a user; degraded mode still returns the user.
func (s *Service) CreateUser(ctx context.Context, email, name string) *UserDTO {
	res := s.gateway.CreateUser(ctx, user.NewUser(email, name))

	s.logger.Info("user created", "user_id", res.Value().ID(), "degraded", res.IsDegraded())
	return toUserDTO(res.Value())
}

func (s *Service) GetUser(ctx context.Context, id uint) (*UserDTO, error) {
	res := s.gateway.UserByID(ctx, id)
	if res.Value() == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return toUserDTO(res.Value()), nil
}
