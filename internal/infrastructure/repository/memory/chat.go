package memory

import (
	"context"
	"sort"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type ChatRepository struct {
	store *Store
}

func cloneMessage(m *chat.Message) *chat.Message {
	clone, err := chat.ReconstructMessage(
		m.ID(), m.UserID(), m.IsBot(), m.Content(), m.CreatedAt(),
	)
	if err != nil {
		panic("memory: failed to clone chat message: " + err.Error())
	}
	return clone
}

func (r *ChatRepository) Save(ctx context.Context, m *chat.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextMessageID++
	if err := m.SetID(r.store.nextMessageID); err != nil {
		return errors.NewInternalError("Failed to assign message ID", err.Error())
	}
	r.store.chatMessages[m.ID()] = cloneMessage(m)
	return nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*chat.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*chat.Message, 0)
	for _, m := range r.store.chatMessages {
		if m.UserID() == userID {
			result = append(result, cloneMessage(m))
		}
	}

	// Oldest first.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() < result[j].ID()
		}
		return result[i].CreatedAt().Before(result[j].CreatedAt())
	})

	// Keep only the most recent limit messages.
	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result, nil
}

func (r *ChatRepository) ClearByUser(ctx context.Context, userID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, m := range r.store.chatMessages {
		if m.UserID() == userID {
			delete(r.store.chatMessages, id)
		}
	}
	return nil
}
