package ticket

import (
	"fmt"
	"time"

	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	title       string
	description string
	category    string
	priority    vo.Priority
	status      vo.TicketStatus
	requesterID uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
}

func NewTicket(
	title string,
	description string,
	category string,
	priority vo.Priority,
	status vo.TicketStatus,
	requesterID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := time.Now().UTC()

	t := &Ticket{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		requesterID: requesterID,
		createdAt:   now,
		updatedAt:   now,
	}

	// A ticket created directly in resolved state still records when that
	// happened.
	if status.IsResolved() {
		t.resolvedAt = &now
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	category string,
	priority vo.Priority,
	status vo.TicketStatus,
	requesterID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		requesterID: requesterID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to newStatus. The first transition into
// resolved stamps resolvedAt; later transitions, including reopening, never
// clear or overwrite it.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.touch()

	if newStatus.IsResolved() && t.resolvedAt == nil {
		now := time.Now().UTC()
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) UpdateCategory(category string) {
	t.category = category
	t.touch()
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.touch()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}
