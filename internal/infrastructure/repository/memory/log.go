package memory

import (
	"context"
	"sort"

	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type LogRepository struct {
	store *Store
}

func cloneLog(l *logs.Log) *logs.Log {
	var analysis *string
	if l.Analysis() != nil {
		v := *l.Analysis()
		analysis = &v
	}
	clone, err := logs.ReconstructLog(
		l.ID(), l.Name(), l.Content(), l.UserID(), l.SystemID(),
		analysis, l.CreatedAt(),
	)
	if err != nil {
		panic("memory: failed to clone log: " + err.Error())
	}
	return clone
}

func (r *LogRepository) Save(ctx context.Context, l *logs.Log) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextLogID++
	if err := l.SetID(r.store.nextLogID); err != nil {
		return errors.NewInternalError("Failed to assign log ID", err.Error())
	}
	r.store.logs[l.ID()] = cloneLog(l)
	return nil
}

func (r *LogRepository) Update(ctx context.Context, l *logs.Log) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.logs[l.ID()]; !ok {
		return errors.NewNotFoundError("Log not found")
	}
	r.store.logs[l.ID()] = cloneLog(l)
	return nil
}

func (r *LogRepository) GetByID(ctx context.Context, logID uint) (*logs.Log, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.logs[logID]
	if !ok {
		return nil, errors.NewNotFoundError("Log not found")
	}
	return cloneLog(l), nil
}

func (r *LogRepository) List(ctx context.Context) ([]*logs.Log, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(*logs.Log) bool { return true }), nil
}

func (r *LogRepository) ListByUser(ctx context.Context, userID uint) ([]*logs.Log, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(l *logs.Log) bool { return l.UserID() == userID }), nil
}

// collect assumes the caller holds at least a read lock.
func (r *LogRepository) collect(match func(*logs.Log) bool) []*logs.Log {
	result := make([]*logs.Log, 0)
	for _, l := range r.store.logs {
		if match(l) {
			result = append(result, cloneLog(l))
		}
	}

	// Newest first.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result
}
