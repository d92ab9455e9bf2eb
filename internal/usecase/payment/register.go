package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RegisterPaymentInput struct {
	SalonID       uuid.UUID
	AppointmentID uuid.UUID
	Amount        decimal.Decimal
	Currency      string
}

type RegisterPayment struct {
	repo       domain.Repository
	currencies []string
}

func NewRegisterPayment(
	repo domain.Repository,
	currencies []string,
) *RegisterPayment {
	return &RegisterPayment{
		repo:       repo,
		currencies: currencies,
	}
}

// Execute records a pending payment; at most one active payment exists per appointment.
func (uc *RegisterPayment) Execute(
	ctx context.Context,
	in RegisterPaymentInput,
) (*models.Payment, error) {

	if !in.Amount.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	currency, err := domain.NormalizeCurrency(in.Currency, uc.currencies)
	if err != nil {
		return nil, err
	}

	var out *models.Payment
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.SalonID, in.AppointmentID)
		if err != nil {
			return err
		}

		active, err := tx.HasActivePayment(ctx, ap.ID)
		if err != nil {
			return err
		}
		if active {
			return httperr.ErrBusiness("payment_already_exists")
		}

		p := &models.Payment{
			SalonID:       in.SalonID,
			AppointmentID: &ap.ID,
			Amount:        in.Amount.Round(2),
			Currency:      currency,
			Status:        string(domain.StatusPending),
		}
		if err := tx.CreatePayment(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
