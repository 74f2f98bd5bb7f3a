package memory

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type MetricRepository struct {
	store *Store
}

func cloneMetric(m *metrics.SystemMetric) *metrics.SystemMetric {
	clone, err := metrics.ReconstructSystemMetric(
		m.ID(), m.SystemID(), m.SystemName(), m.Status(),
		m.CPUUsage(), m.MemoryUsage(), m.DiskUsage(), m.UpdatedAt(),
	)
	if err != nil {
		panic("memory: failed to clone metric: " + err.Error())
	}
	return clone
}

// Upsert replaces the snapshot for the metric's system ID, keeping the
// original record id when one exists.
func (r *MetricRepository) Upsert(ctx context.Context, m *metrics.SystemMetric) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.metrics {
		if existing.SystemID() == m.SystemID() {
			replacement, err := metrics.ReconstructSystemMetric(
				id, m.SystemID(), m.SystemName(), m.Status(),
				m.CPUUsage(), m.MemoryUsage(), m.DiskUsage(), m.UpdatedAt(),
			)
			if err != nil {
				return errors.NewInternalError("Failed to replace metric", err.Error())
			}
			r.store.metrics[id] = replacement
			return nil
		}
	}

	r.store.nextMetricID++
	if err := m.SetID(r.store.nextMetricID); err != nil {
		return errors.NewInternalError("Failed to assign metric ID", err.Error())
	}
	r.store.metrics[m.ID()] = cloneMetric(m)
	return nil
}

func (r *MetricRepository) GetBySystemID(ctx context.Context, systemID string) (*metrics.SystemMetric, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.metrics {
		if m.SystemID() == systemID {
			return cloneMetric(m), nil
		}
	}
	return nil, errors.NewNotFoundError("System metric not found")
}

func (r *MetricRepository) List(ctx context.Context) ([]*metrics.SystemMetric, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*metrics.SystemMetric, 0, len(r.store.metrics))
	for _, m := range r.store.metrics {
		result = append(result, cloneMetric(m))
	}
	sortByID(result, func(m *metrics.SystemMetric) uint { return m.ID() })
	return result, nil
}
