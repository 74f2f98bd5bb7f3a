package usecases

import (
	"time"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type MessageResult struct {
	ID      uint
	UserID  uint
	IsBot   bool
	Content string
	// ContentHTML is the sanitized rendering of Content, present only for
	// bot messages.
	ContentHTML *string
	CreatedAt   time.Time
}

func messageResultFrom(m *chat.Message, renderer markdown.MarkdownService) *MessageResult {
	result := &MessageResult{
		ID:        m.ID(),
		UserID:    m.UserID(),
		IsBot:     m.IsBot(),
		Content:   m.Content(),
		CreatedAt: m.CreatedAt(),
	}

	if m.IsBot() {
		if rendered, err := renderer.ToHTMLSanitized(m.Content()); err == nil {
			result.ContentHTML = &rendered
		}
	}
	return result
}

func messageResultsFrom(messages []*chat.Message, renderer markdown.MarkdownService) []*MessageResult {
	results := make([]*MessageResult, 0, len(messages))
	for _, m := range messages {
		results = append(results, messageResultFrom(m, renderer))
	}
	return results
}
