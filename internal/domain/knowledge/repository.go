package knowledge

import "context"

// Repository covers reads for serving and saves for seeding.
type Repository interface {
	Save(ctx context.Context, e *Entry) error
	FindAll(ctx context.Context) ([]*Entry, error)
}
