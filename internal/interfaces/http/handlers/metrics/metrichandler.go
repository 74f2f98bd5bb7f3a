package metrics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/application/metrics/usecases"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

type ReportMetricRequest struct {
	SystemID    string `json:"system_id" binding:"required,max=100"`
	SystemName  string `json:"system_name" binding:"required,max=200"`
	Status      string `json:"status" binding:"required"`
	CPUUsage    int    `json:"cpu_usage" binding:"min=0,max=100"`
	MemoryUsage int    `json:"memory_usage" binding:"min=0,max=100"`
	DiskUsage   int    `json:"disk_usage" binding:"min=0,max=100"`
}

type MetricResponse struct {
	ID          uint      `json:"id"`
	SystemID    string    `json:"system_id"`
	SystemName  string    `json:"system_name"`
	Status      string    `json:"status"`
	CPUUsage    int       `json:"cpu_usage"`
	MemoryUsage int       `json:"memory_usage"`
	DiskUsage   int       `json:"disk_usage"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func metricResponseFrom(r *usecases.MetricResult) *MetricResponse {
	return &MetricResponse{
		ID:          r.ID,
		SystemID:    r.SystemID,
		SystemName:  r.SystemName,
		Status:      r.Status,
		CPUUsage:    r.CPUUsage,
		MemoryUsage: r.MemoryUsage,
		DiskUsage:   r.DiskUsage,
		UpdatedAt:   r.UpdatedAt,
	}
}

type MetricHandler struct {
	reportMetricUC *usecases.ReportMetricUseCase
	listMetricsUC  *usecases.ListMetricsUseCase
	logger         logger.Interface
}

func NewMetricHandler(
	reportMetricUC *usecases.ReportMetricUseCase,
	listMetricsUC *usecases.ListMetricsUseCase,
	logger logger.Interface,
) *MetricHandler {
	return &MetricHandler{
		reportMetricUC: reportMetricUC,
		listMetricsUC:  listMetricsUC,
		logger:         logger,
	}
}

// ReportMetric handles PUT /api/system-metrics
func (h *MetricHandler) ReportMetric(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ReportMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	result, err := h.reportMetricUC.Execute(c.Request.Context(), usecases.ReportMetricCommand{
		Actor:       actor,
		SystemID:    req.SystemID,
		SystemName:  req.SystemName,
		Status:      req.Status,
		CPUUsage:    req.CPUUsage,
		MemoryUsage: req.MemoryUsage,
		DiskUsage:   req.DiskUsage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Metric recorded", metricResponseFrom(result))
}

// ListMetrics handles GET /api/system-metrics
func (h *MetricHandler) ListMetrics(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	results, err := h.listMetricsUC.Execute(c.Request.Context(), usecases.ListMetricsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*MetricResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, metricResponseFrom(r))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
