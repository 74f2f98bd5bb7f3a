package metrics

import "context"

type Repository interface {
	// Upsert stores the snapshot, replacing any existing record with the
	// same system ID.
	Upsert(ctx context.Context, metric *SystemMetric) error
	GetBySystemID(ctx context.Context, systemID string) (*SystemMetric, error)
	List(ctx context.Context) ([]*SystemMetric, error)
}
