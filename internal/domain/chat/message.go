// Package chat models the per-user assistant conversation. Messages are
// append-only and strictly scoped to their owner.
package chat

import (
	"fmt"
	"time"
)

type Message struct {
	id        uint
	userID    uint
	isBot     bool
	content   string
	createdAt time.Time
}

func NewMessage(userID uint, isBot bool, content string) (*Message, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}

	return &Message{
		userID:    userID,
		isBot:     isBot,
		content:   content,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	userID uint,
	isBot bool,
	content string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Message{
		id:        id,
		userID:    userID,
		isBot:     isBot,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) UserID() uint {
	return m.userID
}

func (m *Message) IsBot() bool {
	return m.isBot
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
