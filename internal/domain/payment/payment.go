package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Active payments block registering another one for the same appointment.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusProcessing || s == StatusSucceeded
}

// ProviderPayment is the provider's view of a payment.
type ProviderPayment struct {
	ID       string
	Status   Status
	Amount   decimal.Decimal
	Currency string
	Method   string
}

type Gateway interface {
	Fetch(ctx context.Context, providerPaymentID string) (*ProviderPayment, error)
}

// NormalizeCurrency lowercases code and checks it against the allowed list.
func NormalizeCurrency(code string, allowed []string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	for _, a := range allowed {
		if a == c {
			return c, nil
		}
	}
	return "", httperr.ErrBusiness("unsupported_currency")
}

// Matches reports whether the provider charged what the local record expects.
func (p *ProviderPayment) Matches(local *models.Payment) bool {
	return p.Amount.Equal(local.Amount) && strings.EqualFold(p.Currency, local.Currency)
}

type Repository interface {
	GetAppointment(
		ctx context.Context,
		salonID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	HasActivePayment(
		ctx context.Context,
		appointmentID uuid.UUID,
	) (bool, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPayment(
		ctx context.Context,
		salonID uuid.UUID,
		paymentID uuid.UUID,
	) (*models.Payment, error)

	GetPaymentForUpdate(
		ctx context.Context,
		salonID uuid.UUID,
		paymentID uuid.UUID,
	) (*models.Payment, error)

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	MarkDepositPaid(
		ctx context.Context,
		appointmentID uuid.UUID,
	) error

	EnqueueEvent(
		ctx context.Context,
		ev notification.Event,
	) error

	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
