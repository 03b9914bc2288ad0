package ticket

import "context"

// Repository is the persistence contract for tickets. FindByID returns
// (nil, nil) when the ticket does not exist so callers can distinguish a
// lookup miss from a store failure.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	FindAll(ctx context.Context) ([]*Ticket, error)
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) (bool, error)
}
