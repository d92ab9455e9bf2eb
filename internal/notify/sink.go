package notify

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Sink delivers one outbox event to one channel. Deliver may be called again
// for the same event after a failure elsewhere.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, ev models.OutboxEvent) error
}

// Message is the payload pushed to external channels.
type Message struct {
	ID       string  `json:"id"`
	SalonID  string  `json:"salon_id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	EntityID *string `json:"entity_id,omitempty"`
	At       string  `json:"created_at"`
}

func newMessage(ev models.OutboxEvent) Message {
	m := Message{
		ID:      ev.ID.String(),
		SalonID: ev.SalonID.String(),
		Type:    ev.Type,
		Title:   ev.Title,
		Message: ev.Message,
		At:      ev.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if ev.EntityID != nil {
		s := ev.EntityID.String()
		m.EntityID = &s
	}
	return m
}
