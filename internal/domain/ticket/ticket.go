package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// DefaultCategory is used when no classification has been assigned.
const DefaultCategory = "general"

// Ticket is a support request record. The category is assigned by the
// classifier at intake time, before the ticket is persisted.
type Ticket struct {
	id          uint
	subject     string
	description string
	priority    vo.Priority
	status      vo.Status
	category    string
	userID      *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(subject, description string, priority vo.Priority, category string) *Ticket {
	if !priority.IsValid() {
		priority = vo.PriorityMedium
	}
	if category == "" {
		category = DefaultCategory
	}

	now := time.Now()
	return &Ticket{
		subject:     subject,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		category:    category,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructTicket(
	id uint,
	subject string,
	description string,
	priority vo.Priority,
	status vo.Status,
	category string,
	userID *uint,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		subject:     subject,
		description: description,
		priority:    priority,
		status:      status,
		category:    category,
		userID:      userID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) UserID() *uint {
	return t.userID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
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

func (t *Ticket) AssignUser(userID uint) {
	t.userID = &userID
	t.touch()
}

func (t *Ticket) UpdateSubject(subject string) {
	t.subject = subject
	t.touch()
}

func (t *Ticket) UpdateDescription(description string) {
	t.description = description
	t.touch()
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.touch()
	return nil
}

func (t *Ticket) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.touch()
	return nil
}

func (t *Ticket) SetCategory(category string) {
	if category == "" {
		category = DefaultCategory
	}
	t.category = category
}

// touch refreshes updatedAt. createdAt is set once and never changes.
func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}
