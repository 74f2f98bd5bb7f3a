// Package metrics models monitored system health snapshots. One record per
// system; writes with the same system ID replace the previous snapshot.
package metrics

import (
	"fmt"
	"time"
)

type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusWarning  SystemStatus = "warning"
	StatusCritical SystemStatus = "critical"
)

var validStatuses = map[SystemStatus]bool{
	StatusHealthy:  true,
	StatusWarning:  true,
	StatusCritical: true,
}

func (s SystemStatus) String() string {
	return string(s)
}

func (s SystemStatus) IsValid() bool {
	return validStatuses[s]
}

func NewSystemStatus(s string) (SystemStatus, error) {
	status := SystemStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid system status: %s", s)
	}
	return status, nil
}

type SystemMetric struct {
	id          uint
	systemID    string
	systemName  string
	status      SystemStatus
	cpuUsage    int
	memoryUsage int
	diskUsage   int
	updatedAt   time.Time
}

func NewSystemMetric(systemID, systemName string, status SystemStatus, cpuUsage, memoryUsage, diskUsage int) (*SystemMetric, error) {
	if len(systemID) == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if len(systemName) == 0 {
		return nil, fmt.Errorf("system name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid system status: %s", status)
	}
	for name, v := range map[string]int{"cpu": cpuUsage, "memory": memoryUsage, "disk": diskUsage} {
		if v < 0 || v > 100 {
			return nil, fmt.Errorf("%s usage must be between 0 and 100", name)
		}
	}

	return &SystemMetric{
		systemID:    systemID,
		systemName:  systemName,
		status:      status,
		cpuUsage:    cpuUsage,
		memoryUsage: memoryUsage,
		diskUsage:   diskUsage,
		updatedAt:   time.Now().UTC(),
	}, nil
}

func ReconstructSystemMetric(
	id uint,
	systemID string,
	systemName string,
	status SystemStatus,
	cpuUsage, memoryUsage, diskUsage int,
	updatedAt time.Time,
) (*SystemMetric, error) {
	if id == 0 {
		return nil, fmt.Errorf("metric ID cannot be zero")
	}
	if len(systemID) == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid system status: %s", status)
	}

	return &SystemMetric{
		id:          id,
		systemID:    systemID,
		systemName:  systemName,
		status:      status,
		cpuUsage:    cpuUsage,
		memoryUsage: memoryUsage,
		diskUsage:   diskUsage,
		updatedAt:   updatedAt,
	}, nil
}

func (m *SystemMetric) ID() uint {
	return m.id
}

func (m *SystemMetric) SystemID() string {
	return m.systemID
}

func (m *SystemMetric) SystemName() string {
	return m.systemName
}

func (m *SystemMetric) Status() SystemStatus {
	return m.status
}

func (m *SystemMetric) CPUUsage() int {
	return m.cpuUsage
}

func (m *SystemMetric) MemoryUsage() int {
	return m.memoryUsage
}

func (m *SystemMetric) DiskUsage() int {
	return m.diskUsage
}

func (m *SystemMetric) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *SystemMetric) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("metric ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("metric ID cannot be zero")
	}
	m.id = id
	return nil
}
