package logs

import (
	"time"

	"github.com/Menatic/IT-Support/internal/application/logs/usecases"
)

type UploadLogRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	SystemID string `json:"systemId"`
}

type LogResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	UserID       uint      `json:"user_id"`
	SystemID     string    `json:"system_id"`
	Analysis     *string   `json:"analysis"`
	AnalysisHTML *string   `json:"analysis_html,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func logResponseFrom(r *usecases.LogResult) *LogResponse {
	return &LogResponse{
		ID:           r.ID,
		Name:         r.Name,
		Content:      r.Content,
		UserID:       r.UserID,
		SystemID:     r.SystemID,
		Analysis:     r.Analysis,
		AnalysisHTML: r.AnalysisHTML,
		CreatedAt:    r.CreatedAt,
	}
}

func logResponsesFrom(results []*usecases.LogResult) []*LogResponse {
	responses := make([]*LogResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, logResponseFrom(r))
	}
	return responses
}
