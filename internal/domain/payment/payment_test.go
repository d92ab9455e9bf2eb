package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestNormalizeCurrency(t *testing.T) {
	allowed := []string{"usd", "brl"}

	got, err := NormalizeCurrency(" BRL ", allowed)
	require.NoError(t, err)
	assert.Equal(t, "brl", got)

	_, err = NormalizeCurrency("jpy", allowed)
	assert.True(t, httperr.IsBusiness(err, "unsupported_currency"))
}

func TestActiveStatuses(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusProcessing.Active())
	assert.True(t, StatusSucceeded.Active())
	assert.False(t, StatusFailed.Active())
}

func TestProviderPaymentMatches(t *testing.T) {
	local := &models.Payment{Amount: decimal.RequireFromString("50.00"), Currency: "brl"}

	assert.True(t, (&ProviderPayment{Amount: decimal.NewFromInt(50), Currency: "BRL"}).Matches(local))
	assert.False(t, (&ProviderPayment{Amount: decimal.RequireFromString("49.99"), Currency: "BRL"}).Matches(local))
	assert.False(t, (&ProviderPayment{Amount: decimal.NewFromInt(50), Currency: "USD"}).Matches(local))
}
