package usecases

import (
	"time"

	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type LogResult struct {
	ID        uint
	Name      string
	Content   string
	UserID    uint
	SystemID  string
	Analysis  *string
	// AnalysisHTML is the sanitized rendering of Analysis, present whenever
	// Analysis is.
	AnalysisHTML *string
	CreatedAt    time.Time
}

func logResultFrom(l *logs.Log, renderer markdown.MarkdownService) *LogResult {
	result := &LogResult{
		ID:        l.ID(),
		Name:      l.Name(),
		Content:   l.Content(),
		UserID:    l.UserID(),
		SystemID:  l.SystemID(),
		Analysis:  l.Analysis(),
		CreatedAt: l.CreatedAt(),
	}

	if l.Analysis() != nil {
		if rendered, err := renderer.ToHTMLSanitized(*l.Analysis()); err == nil {
			result.AnalysisHTML = &rendered
		}
	}
	return result
}
