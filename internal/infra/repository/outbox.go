package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// enqueueEvent writes ev to the outbox using db, which is the caller's transaction
// when called from inside WithinTx.
func enqueueEvent(
	ctx context.Context,
	db *gorm.DB,
	ev notification.Event,
) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	row := &models.OutboxEvent{
		SalonID:  ev.SalonID,
		Type:     string(ev.Type),
		Title:    ev.Title,
		Message:  ev.Message,
		EntityID: ev.EntityID,
	}
	return db.WithContext(ctx).Create(row).Error
}
