// Package ticket implements the ticket intake and lifecycle service:
// classify the description, build the entity, hand it to the persistence
// gateway.
package ticket

import (
	"context"

	"helpdesk/internal/application/gateway"
	"helpdesk/internal/domain/classification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	Priority    string
	UserID      *uint
}

type UpdateTicketCommand struct {
	Subject     *string
	Description *string
	Priority    *string
	Status      *string
}

type Service struct {
	gateway    *gateway.Gateway
	classifier *classification.Classifier
	logger     logger.Interface
}

func NewService(gw *gateway.Gateway, classifier *classification.Classifier, log logger.Interface) *Service {
	return &Service{
		gateway:    gw,
		classifier: classifier,
		logger:     log,
	}
}

// CreateTicket classifies the description, builds the ticket, and persists
// it. A degraded persist still yields a ticket, just without a store id;
// intake never fails over store trouble.
func (s *Service) CreateTicket(ctx context.Context, cmd CreateTicketCommand) *TicketDTO {
	category := s.classifier.Classify(cmd.Description)

	t := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		vo.PriorityOrDefault(cmd.Priority),
		category,
	)
	if cmd.UserID != nil {
		t.AssignUser(*cmd.UserID)
	}

	res := s.gateway.CreateTicket(ctx, t)
	s.logger.Info("ticket created",
		"ticket_id", res.Value().ID(),
		"category", category,
		"degraded", res.IsDegraded())

	return ToTicketDTO(res.Value())
}

func (s *Service) ListTickets(ctx context.Context) []*TicketDTO {
	res := s.gateway.AllTickets(ctx)
	return ToTicketDTOs(res.Value())
}

func (s *Service) GetTicket(ctx context.Context, id uint) (*TicketDTO, error) {
	res := s.gateway.TicketByID(ctx, id)
	if res.Value() == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return ToTicketDTO(res.Value()), nil
}

// UpdateTicket applies the requested changes and writes the ticket back.
// Unknown tickets, and degraded-mode updates, surface as not found.
func (s *Service) UpdateTicket(ctx context.Context, id uint, cmd UpdateTicketCommand) (*TicketDTO, error) {
	existing := s.gateway.TicketByID(ctx, id)
	t := existing.Value()
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	if cmd.Subject != nil {
		t.UpdateSubject(*cmd.Subject)
	}
	if cmd.Description != nil {
		t.UpdateDescription(*cmd.Description)
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	res := s.gateway.UpdateTicket(ctx, t)
	if res.Value() == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	s.logger.Info("ticket updated", "ticket_id", id)
	return ToTicketDTO(res.Value()), nil
}

// DeleteTicket removes a ticket. A store-confirmed miss is not found; a
// degraded delete reports false without erroring.
func (s *Service) DeleteTicket(ctx context.Context, id uint) (bool, error) {
	res := s.gateway.DeleteTicket(ctx, id)
	if !res.Value() && !res.IsDegraded() {
		return false, errors.NewNotFoundError("Ticket not found")
	}

	s.logger.Info("ticket deleted", "ticket_id", id, "degraded", res.IsDegraded())
	return res.Value(), nil
}
