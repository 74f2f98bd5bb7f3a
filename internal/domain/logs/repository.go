package logs

import "context"

type Repository interface {
	Save(ctx context.Context, log *Log) error
	Update(ctx context.Context, log *Log) error
	GetByID(ctx context.Context, logID uint) (*Log, error)
	// List returns all logs, newest first.
	List(ctx context.Context) ([]*Log, error)
	// ListByUser returns one user's logs, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*Log, error)
}
