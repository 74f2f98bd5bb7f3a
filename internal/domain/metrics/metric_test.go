package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemMetric(t *testing.T) {
	m, err := NewSystemMetric("main-server", "Main Server", StatusHealthy, 45, 60, 38)
	require.NoError(t, err)
	assert.Equal(t, "main-server", m.SystemID())
	assert.Equal(t, StatusHealthy, m.Status())
	assert.Equal(t, 45, m.CPUUsage())
}

func TestNewSystemMetric_Bounds(t *testing.T) {
	tests := []struct {
		name string
		cpu  int
		mem  int
		disk int
	}{
		{name: "cpu negative", cpu: -1, mem: 50, disk: 50},
		{name: "cpu over 100", cpu: 101, mem: 50, disk: 50},
		{name: "memory over 100", cpu: 50, mem: 120, disk: 50},
		{name: "disk negative", cpu: 50, mem: 50, disk: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystemMetric("s", "S", StatusHealthy, tt.cpu, tt.mem, tt.disk)
			assert.Error(t, err)
		})
	}
}

func TestNewSystemMetric_Invalid(t *testing.T) {
	_, err := NewSystemMetric("", "S", StatusHealthy, 1, 1, 1)
	assert.Error(t, err)
	_, err = NewSystemMetric("s", "", StatusHealthy, 1, 1, 1)
	assert.Error(t, err)
	_, err = NewSystemMetric("s", "S", SystemStatus("degraded"), 1, 1, 1)
	assert.Error(t, err)
}

func TestNewSystemStatus(t *testing.T) {
	s, err := NewSystemStatus("warning")
	require.NoError(t, err)
	assert.Equal(t, StatusWarning, s)

	_, err = NewSystemStatus("down")
	assert.Error(t, err)
}
