package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

// --------------------------------------------------
// Outbox
// --------------------------------------------------

// PendingOutbox returns undelivered events that still have attempts left, oldest first.
func (r *NotificationGormRepository) PendingOutbox(
	ctx context.Context,
	maxAttempts int,
	limit int,
) ([]models.OutboxEvent, error) {

	var out []models.OutboxEvent
	if err := r.db.WithContext(ctx).
		Where("delivered_at IS NULL AND attempts < ?", maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NotificationGormRepository) MarkDelivered(
	ctx context.Context,
	id uuid.UUID,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"delivered_at": at,
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   "",
		}).Error
}

func (r *NotificationGormRepository) MarkFailed(
	ctx context.Context,
	id uuid.UUID,
	reason string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error
}

// --------------------------------------------------
// In-app notifications
// --------------------------------------------------

// InsertNotification is a no-op when a row with the same id already exists.
func (r *NotificationGormRepository) InsertNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(n).Error
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
	salonID uuid.UUID,
	unreadOnly bool,
	limit int,
) ([]models.Notification, error) {

	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var out []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NotificationGormRepository) UnreadCount(
	ctx context.Context,
	salonID uuid.UUID,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("salon_id = ? AND is_read = ?", salonID, false).
		Count(&n).Error
	return n, err
}

// MarkRead flips the read flag, the only mutation a notification allows.
func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	salonID uuid.UUID,
	id uuid.UUID,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND salon_id = ?", id, salonID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "notification")
	}
	return nil
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	salonID uuid.UUID,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("salon_id = ? AND is_read = ?", salonID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
