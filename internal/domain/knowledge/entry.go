// Package knowledge holds the knowledge-base entry entity and the substring
// search over entries.
package knowledge

import (
	"fmt"
	"time"
)

// Entry is a question/answer pair. Read-mostly: entries are seeded and
// searched, not edited through this service.
type Entry struct {
	id        uint
	question  string
	answer    string
	category  string
	createdAt time.Time
	updatedAt time.Time
}

func NewEntry(question, answer, category string) *Entry {
	now := time.Now()
	return &Entry{
		question:  question,
		answer:    answer,
		category:  category,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructEntry(id uint, question, answer, category string, createdAt, updatedAt time.Time) *Entry {
	return &Entry{
		id:        id,
		question:  question,
		answer:    answer,
		category:  category,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) Question() string {
	return e.question
}

func (e *Entry) Answer() string {
	return e.answer
}

func (e *Entry) Category() string {
	return e.category
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
