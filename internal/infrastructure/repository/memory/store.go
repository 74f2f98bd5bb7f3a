// Package memory provides the in-process persistence backend. Records live
// in keyed maps guarded by a single RWMutex; writes replace whole records
// and ids are assigned from per-entity counters. Each Store instance is
// independent, so tests construct a fresh one.
package memory

import (
	"sync"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/domain/user"
)

type Store struct {
	mu sync.RWMutex

	users        map[uint]*user.User
	tickets      map[uint]*ticket.Ticket
	comments     map[uint]*ticket.Comment
	logs         map[uint]*logs.Log
	metrics      map[uint]*metrics.SystemMetric
	chatMessages map[uint]*chat.Message

	nextUserID    uint
	nextTicketID  uint
	nextCommentID uint
	nextLogID     uint
	nextMetricID  uint
	nextMessageID uint
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uint]*user.User),
		tickets:      make(map[uint]*ticket.Ticket),
		comments:     make(map[uint]*ticket.Comment),
		logs:         make(map[uint]*logs.Log),
		metrics:      make(map[uint]*metrics.SystemMetric),
		chatMessages: make(map[uint]*chat.Message),
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

func (s *Store) Tickets() *TicketRepository {
	return &TicketRepository{store: s}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{store: s}
}

func (s *Store) Logs() *LogRepository {
	return &LogRepository{store: s}
}

func (s *Store) Metrics() *MetricRepository {
	return &MetricRepository{store: s}
}

func (s *Store) ChatMessages() *ChatRepository {
	return &ChatRepository{store: s}
}
