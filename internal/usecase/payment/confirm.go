package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ConfirmPaymentInput struct {
	SalonID           uuid.UUID
	PaymentID         uuid.UUID
	ProviderPaymentID string
}

type ConfirmPayment struct {
	repo    domain.Repository
	gateway domain.Gateway
	waker   notification.Waker
}

func NewConfirmPayment(
	repo domain.Repository,
	gateway domain.Gateway,
	waker notification.Waker,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:    repo,
		gateway: gateway,
		waker:   waker,
	}
}

// Execute syncs the local payment with the provider. payment_succeeded is enqueued
// only on the call that first moves the payment to succeeded.
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	in ConfirmPaymentInput,
) (*models.Payment, error) {

	if uc.gateway == nil {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	current, err := uc.repo.GetPayment(ctx, in.SalonID, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if domain.Status(current.Status) == domain.StatusSucceeded {
		return current, nil
	}

	// provider call stays outside the transaction
	remote, err := uc.gateway.Fetch(ctx, in.ProviderPaymentID)
	if err != nil {
		return nil, err
	}
	if !remote.Matches(current) {
		return nil, httperr.ErrBusiness("payment_amount_mismatch")
	}

	var (
		out       *models.Payment
		succeeded bool
	)
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		p, err := tx.GetPaymentForUpdate(ctx, in.SalonID, in.PaymentID)
		if err != nil {
			return err
		}
		out = p

		if domain.Status(p.Status) == domain.StatusSucceeded {
			return nil
		}

		providerID := remote.ID
		p.ProviderPaymentID = &providerID
		p.PaymentMethod = remote.Method
		p.Status = string(remote.Status)

		if err := tx.UpdatePayment(ctx, p); err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("provider_payment_already_used")
			}
			return err
		}

		if remote.Status != domain.StatusSucceeded {
			return nil
		}

		if p.AppointmentID != nil {
			if err := tx.MarkDepositPaid(ctx, *p.AppointmentID); err != nil {
				return err
			}
		}
		succeeded = true
		return tx.EnqueueEvent(ctx, notification.PaymentSucceeded(p.SalonID, p.ID, p.Currency, p.Amount))
	})
	if err != nil {
		return nil, err
	}

	if succeeded {
		uc.waker.Wake()
	}
	return out, nil
}
