// Package gateway is the persistence gateway: every store operation is
// attempted once against the configured repositories and degrades to a safe
// placeholder instead of surfacing a failure. Availability over
// consistency: the caller always gets a usable result.
package gateway

import (
	"context"
	"errors"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/shared/storage"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type Gateway struct {
	tickets   ticket.Repository
	users     user.Repository
	knowledge knowledge.Repository
	logger    logger.Interface
}

func New(
	tickets ticket.Repository,
	users user.Repository,
	entries knowledge.Repository,
	log logger.Interface,
) *Gateway {
	return &Gateway{
		tickets:   tickets,
		users:     users,
		knowledge: entries,
		logger:    log,
	}
}

// CreateTicket persists a ticket. Degraded mode returns the input ticket
// unchanged, without a store-assigned id, so intake keeps working offline.
func (g *Gateway) CreateTicket(ctx context.Context, t *ticket.Ticket) Result[*ticket.Ticket] {
	if err := g.tickets.Save(ctx, t); err != nil {
		g.logDegraded("create ticket", err)
		return Degraded(t, err.Error())
	}
	return Ok(t)
}

// AllTickets lists every ticket. Degraded mode returns an empty collection.
func (g *Gateway) AllTickets(ctx context.Context) Result[[]*ticket.Ticket] {
	tickets, err := g.tickets.FindAll(ctx)
	if err != nil {
		g.logDegraded("list tickets", err)
		return Degraded([]*ticket.Ticket{}, err.Error())
	}
	if tickets == nil {
		tickets = []*ticket.Ticket{}
	}
	return Ok(tickets)
}

// TicketByID fetches one ticket. A nil value inside an ok result is a
// lookup miss, which is distinct from a store failure. Degraded mode
// returns an absent result.
func (g *Gateway) TicketByID(ctx context.Context, id uint) Result[*ticket.Ticket] {
	t, err := g.tickets.FindByID(ctx, id)
	if err != nil {
		g.logDegraded("get ticket", err)
		return Degraded[*ticket.Ticket](nil, err.Error())
	}
	return Ok(t)
}

// UpdateTicket writes a mutated ticket back. Degraded mode returns an
// absent result.
func (g *Gateway) UpdateTicket(ctx context.Context, t *ticket.Ticket) Result[*ticket.Ticket] {
	if err := g.tickets.Update(ctx, t); err != nil {
		g.logDegraded("update ticket", err)
		return Degraded[*ticket.Ticket](nil, err.Error())
	}
	return Ok(t)
}

// DeleteTicket removes a ticket. The value reports whether a row was
// deleted; degraded mode reports false.
func (g *Gateway) DeleteTicket(ctx context.Context, id uint) Result[bool] {
	deleted, err := g.tickets.Delete(ctx, id)
	if err != nil {
		g.logDegraded("delete ticket", err)
		return Degraded(false, err.Error())
	}
	return Ok(deleted)
}

// CreateUser persists a user; degraded mode returns the input unchanged.
func (g *Gateway) CreateUser(ctx context.Context, u *user.User) Result[*user.User] {
	if err := g.users.Save(ctx, u); err != nil {
		g.logDegraded("create user", err)
		return Degraded(u, err.Error())
	}
	return Ok(u)
}

// UserByID fetches one user; nil inside an ok result is a lookup miss.
func (g *Gateway) UserByID(ctx context.Context, id uint) Result[*user.User] {
	u, err := g.users.FindByID(ctx, id)
	if err != nil {
		g.logDegraded("get user", err)
		return Degraded[*user.User](nil, err.Error())
	}
	return Ok(u)
}

// KnowledgeEntries lists the knowledge base; degraded mode is empty.
func (g *Gateway) KnowledgeEntries(ctx context.Context) Result[[]*knowledge.Entry] {
	entries, err := g.knowledge.FindAll(ctx)
	if err != nil {
		g.logDegraded("list knowledge entries", err)
		return Degraded([]*knowledge.Entry{}, err.Error())
	}
	if entries == nil {
		entries = []*knowledge.Entry{}
	}
	return Ok(entries)
}

// CreateKnowledgeEntry persists an entry; used by seeding.
func (g *Gateway) CreateKnowledgeEntry(ctx context.Context, e *knowledge.Entry) Result[*knowledge.Entry] {
	if err := g.knowledge.Save(ctx, e); err != nil {
		g.logDegraded("create knowledge entry", err)
		return Degraded(e, err.Error())
	}
	return Ok(e)
}

// logDegraded records why the fallback was taken. The unconfigured-store
// sentinel is the expected offline mode and logs at debug; anything else
// is a real store failure.
func (g *Gateway) logDegraded(op string, err error) {
	if errors.Is(err, storage.ErrNotConfigured) {
		g.logger.Debug("store not configured, serving degraded result", "op", op)
		return
	}
	g.logger.Error("store operation failed, serving degraded result", "op", op, "error", err)
}
