package metrics

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/application/metrics/usecases"
	"github.com/Menatic/IT-Support/internal/infrastructure/repository/memory"
	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/testutil"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

func newHandler(t *testing.T) *MetricHandler {
	t.Helper()
	store := memory.NewStore()
	log := logger.NewNop()

	return NewMetricHandler(
		usecases.NewReportMetricUseCase(store.Metrics(), log),
		usecases.NewListMetricsUseCase(store.Metrics(), log),
		log,
	)
}

func reportPayload(cpu int) map[string]any {
	return map[string]any{
		"system_id":    "main-server",
		"system_name":  "Main Server",
		"status":       "healthy",
		"cpu_usage":    cpu,
		"memory_usage": 50,
		"disk_usage":   60,
	}
}

func TestReportMetric_UpsertReplacesSnapshot(t *testing.T) {
	handler := newHandler(t)

	for _, cpu := range []int{30, 90} {
		c, w := testutil.NewTestContext(http.MethodPut, "/api/system-metrics", reportPayload(cpu))
		testutil.SetAuthContext(c, 1, authorization.RoleAgent)
		handler.ReportMetric(c)
		require.Equal(t, http.StatusOK, w.Code)
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/system-metrics", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleEmployee)
	handler.ListMetrics(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var snapshots []MetricResponse
	require.NoError(t, json.Unmarshal(resp.Data, &snapshots))
	require.Len(t, snapshots, 1)
	assert.Equal(t, 90, snapshots[0].CPUUsage)
}

func TestReportMetric_EmployeeForbidden(t *testing.T) {
	handler := newHandler(t)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/system-metrics", reportPayload(30))
	testutil.SetAuthContext(c, 3, authorization.RoleEmployee)
	handler.ReportMetric(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportMetric_InvalidStatus(t *testing.T) {
	handler := newHandler(t)

	payload := reportPayload(30)
	payload["status"] = "degraded"

	c, w := testutil.NewTestContext(http.MethodPut, "/api/system-metrics", payload)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	handler.ReportMetric(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
