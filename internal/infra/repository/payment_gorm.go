package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type PaymentGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetAppointment(
	ctx context.Context,
	salonID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, notFound(err, "appointment")
	}
	return &ap, nil
}

func (r *PaymentGormRepository) HasActivePayment(
	ctx context.Context,
	appointmentID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("appointment_id = ? AND status IN ?", appointmentID, []string{
			string(domain.StatusPending),
			string(domain.StatusProcessing),
			string(domain.StatusSucceeded),
		}).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) GetPayment(
	ctx context.Context,
	salonID uuid.UUID,
	paymentID uuid.UUID,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", paymentID, salonID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "payment")
	}
	return &p, nil
}

func (r *PaymentGormRepository) GetPaymentForUpdate(
	ctx context.Context,
	salonID uuid.UUID,
	paymentID uuid.UUID,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND salon_id = ?", paymentID, salonID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "payment")
	}
	return &p, nil
}

func (r *PaymentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentGormRepository) MarkDepositPaid(
	ctx context.Context,
	appointmentID uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("deposit_paid", true).Error
}

func (r *PaymentGormRepository) EnqueueEvent(
	ctx context.Context,
	ev notification.Event,
) error {
	return enqueueEvent(ctx, r.db, ev)
}

func (r *PaymentGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PaymentGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
