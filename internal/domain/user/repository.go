package user

import "context"

// Repository covers the operations the service actually needs for users:
// create and read. FindByID returns (nil, nil) on a lookup miss.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
}
