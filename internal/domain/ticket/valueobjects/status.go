package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusPending    TicketStatus = "pending"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validStatuses[s]
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

func (s TicketStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s TicketStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}
