package chat

import "context"

type Repository interface {
	Save(ctx context.Context, message *Message) error
	// ListByUser returns the most recent limit messages for one user,
	// oldest first.
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Message, error)
	// ClearByUser removes one user's history only.
	ClearByUser(ctx context.Context, userID uint) error
}
