package user

import "context"

type Repository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
