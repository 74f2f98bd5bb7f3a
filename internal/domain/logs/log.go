// Package logs models uploaded system log files and their AI analysis.
package logs

import (
	"fmt"
	"time"
)

type Log struct {
	id        uint
	name      string
	content   string
	userID    uint
	systemID  string
	analysis  *string
	createdAt time.Time
}

func NewLog(name, content string, userID uint, systemID string) (*Log, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if systemID == "" {
		systemID = "unknown"
	}

	return &Log{
		name:      name,
		content:   content,
		userID:    userID,
		systemID:  systemID,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructLog(
	id uint,
	name string,
	content string,
	userID uint,
	systemID string,
	analysis *string,
	createdAt time.Time,
) (*Log, error) {
	if id == 0 {
		return nil, fmt.Errorf("log ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Log{
		id:        id,
		name:      name,
		content:   content,
		userID:    userID,
		systemID:  systemID,
		analysis:  analysis,
		createdAt: createdAt,
	}, nil
}

func (l *Log) ID() uint {
	return l.id
}

func (l *Log) Name() string {
	return l.name
}

func (l *Log) Content() string {
	return l.content
}

func (l *Log) UserID() uint {
	return l.userID
}

func (l *Log) SystemID() string {
	return l.systemID
}

func (l *Log) Analysis() *string {
	return l.analysis
}

func (l *Log) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("log ID cannot be zero")
	}
	l.id = id
	return nil
}

// AttachAnalysis records the AI analysis. It is written at most once; a log
// whose analysis failed stays without one.
func (l *Log) AttachAnalysis(analysis string) error {
	if l.analysis != nil {
		return fmt.Errorf("analysis is already attached")
	}
	if len(analysis) == 0 {
		return fmt.Errorf("analysis cannot be empty")
	}
	l.analysis = &analysis
	return nil
}
