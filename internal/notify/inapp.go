package notify

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type NotificationWriter interface {
	InsertNotification(ctx context.Context, n *models.Notification) error
}

// InAppSink stores the event as a notification row. The row reuses the outbox id,
// so a retried delivery never produces a second row.
type InAppSink struct {
	store NotificationWriter
}

func NewInAppSink(store NotificationWriter) *InAppSink {
	return &InAppSink{store: store}
}

func (s *InAppSink) Name() string { return "in_app" }

func (s *InAppSink) Deliver(ctx context.Context, ev models.OutboxEvent) error {
	return s.store.InsertNotification(ctx, &models.Notification{
		ID:        ev.ID,
		SalonID:   ev.SalonID,
		Type:      ev.Type,
		Title:     ev.Title,
		Message:   ev.Message,
		EntityID:  ev.EntityID,
		CreatedAt: ev.CreatedAt,
	})
}
