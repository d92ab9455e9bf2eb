package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type MercadoPagoGateway struct {
	client mppayment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{client: mppayment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Fetch(ctx context.Context, providerPaymentID string) (*domain.ProviderPayment, error) {
	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_provider_payment_id")
	}

	res, err := g.client.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mercadopago get %d: %w", id, err)
	}

	return &domain.ProviderPayment{
		ID:       strconv.Itoa(res.ID),
		Status:   MapStatus(res.Status),
		Amount:   decimal.NewFromFloat(res.TransactionAmount).Round(2),
		Currency: res.CurrencyID,
		Method:   res.PaymentMethodID,
	}, nil
}

// MapStatus folds MercadoPago's payment statuses into ours.
func MapStatus(s string) domain.Status {
	switch s {
	case "approved", "authorized":
		return domain.StatusSucceeded
	case "in_process", "in_mediation":
		return domain.StatusProcessing
	case "rejected", "cancelled", "refunded", "charged_back":
		return domain.StatusFailed
	default:
		return domain.StatusPending
	}
}

var _ domain.Gateway = (*MercadoPagoGateway)(nil)
