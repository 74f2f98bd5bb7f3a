package mappers

import (
	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
)

type MetricMapper struct{}

func NewMetricMapper() MetricMapper {
	return MetricMapper{}
}

func (MetricMapper) ToModel(m *metrics.SystemMetric) *models.SystemMetricModel {
	return &models.SystemMetricModel{
		ID:          m.ID(),
		SystemID:    m.SystemID(),
		SystemName:  m.SystemName(),
		Status:      m.Status().String(),
		CPUUsage:    m.CPUUsage(),
		MemoryUsage: m.MemoryUsage(),
		DiskUsage:   m.DiskUsage(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func (MetricMapper) ToDomain(m *models.SystemMetricModel) (*metrics.SystemMetric, error) {
	return metrics.ReconstructSystemMetric(
		m.ID,
		m.SystemID,
		m.SystemName,
		metrics.SystemStatus(m.Status),
		m.CPUUsage,
		m.MemoryUsage,
		m.DiskUsage,
		m.UpdatedAt,
	)
}
