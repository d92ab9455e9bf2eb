package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Fetch(ctx context.Context, id string) (*domain.ProviderPayment, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*domain.ProviderPayment)
	return p, args.Error(1)
}

type env struct {
	db    *gorm.DB
	repo  *repository.PaymentGormRepository
	salon *models.Salon
	ap    *models.Appointment
}

func newEnv(t *testing.T) *env {
	gdb := testutil.NewDB(t)
	salon := testutil.Salon(t, gdb, false)
	client := testutil.Client(t, gdb, salon, "Ana")

	ap := &models.Appointment{
		SalonID:   salon.ID,
		ClientID:  client.ID,
		StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Status:    "confirmed",
	}
	require.NoError(t, gdb.Create(ap).Error)

	return &env{
		db:    gdb,
		repo:  repository.NewPaymentGormRepository(gdb),
		salon: salon,
		ap:    ap,
	}
}

func (e *env) register(t *testing.T) *models.Payment {
	t.Helper()
	p, err := NewRegisterPayment(e.repo, []string{"brl", "usd"}).Execute(context.Background(), RegisterPaymentInput{
		SalonID:       e.salon.ID,
		AppointmentID: e.ap.ID,
		Amount:        decimal.RequireFromString("50"),
		Currency:      "BRL",
	})
	require.NoError(t, err)
	return p
}

func TestRegisterPayment(t *testing.T) {
	e := newEnv(t)

	p := e.register(t)
	assert.Equal(t, "brl", p.Currency)
	assert.Equal(t, string(domain.StatusPending), p.Status)

	uc := NewRegisterPayment(e.repo, []string{"brl"})

	_, err := uc.Execute(context.Background(), RegisterPaymentInput{
		SalonID: e.salon.ID, AppointmentID: e.ap.ID, Amount: decimal.NewFromInt(10), Currency: "brl",
	})
	assert.True(t, httperr.IsBusiness(err, "payment_already_exists"))

	_, err = uc.Execute(context.Background(), RegisterPaymentInput{
		SalonID: e.salon.ID, AppointmentID: e.ap.ID, Amount: decimal.NewFromInt(10), Currency: "jpy",
	})
	assert.True(t, httperr.IsBusiness(err, "unsupported_currency"))

	_, err = uc.Execute(context.Background(), RegisterPaymentInput{
		SalonID: e.salon.ID, AppointmentID: e.ap.ID, Amount: decimal.Zero, Currency: "brl",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"))

	_, err = uc.Execute(context.Background(), RegisterPaymentInput{
		SalonID: e.salon.ID, AppointmentID: uuid.New(), Amount: decimal.NewFromInt(10), Currency: "brl",
	})
	assert.True(t, httperr.IsNotFound(err))
}

func TestConfirmApprovedPaymentOnce(t *testing.T) {
	e := newEnv(t)
	p := e.register(t)

	gw := &mockGateway{}
	gw.On("Fetch", "123").Return(&domain.ProviderPayment{
		ID: "123", Status: domain.StatusSucceeded, Amount: decimal.RequireFromString("50.00"), Currency: "BRL", Method: "pix",
	}, nil).Once()

	uc := NewConfirmPayment(e.repo, gw, notification.NopWaker{})
	in := ConfirmPaymentInput{SalonID: e.salon.ID, PaymentID: p.ID, ProviderPaymentID: "123"}

	got, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusSucceeded), got.Status)
	assert.Equal(t, "pix", got.PaymentMethod)

	again, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
	gw.AssertExpectations(t)

	var events int64
	require.NoError(t, e.db.Model(&models.OutboxEvent{}).Where("type = ?", "payment_succeeded").Count(&events).Error)
	assert.EqualValues(t, 1, events)

	var ap models.Appointment
	require.NoError(t, e.db.First(&ap, "id = ?", e.ap.ID).Error)
	assert.True(t, ap.DepositPaid)
}

func TestConfirmRejectedPayment(t *testing.T) {
	e := newEnv(t)
	p := e.register(t)

	gw := &mockGateway{}
	gw.On("Fetch", "9").Return(&domain.ProviderPayment{
		ID: "9", Status: domain.StatusFailed, Amount: decimal.NewFromInt(50), Currency: "brl",
	}, nil)

	got, err := NewConfirmPayment(e.repo, gw, notification.NopWaker{}).Execute(context.Background(), ConfirmPaymentInput{
		SalonID: e.salon.ID, PaymentID: p.ID, ProviderPaymentID: "9",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusFailed), got.Status)

	var events int64
	require.NoError(t, e.db.Model(&models.OutboxEvent{}).Count(&events).Error)
	assert.EqualValues(t, 0, events)

	// a failed payment frees the appointment for a new attempt
	e.register(t)
}

func TestConfirmAmountMismatch(t *testing.T) {
	e := newEnv(t)
	p := e.register(t)

	gw := &mockGateway{}
	gw.On("Fetch", "7").Return(&domain.ProviderPayment{
		ID: "7", Status: domain.StatusSucceeded, Amount: decimal.NewFromInt(5), Currency: "brl",
	}, nil)

	_, err := NewConfirmPayment(e.repo, gw, notification.NopWaker{}).Execute(context.Background(), ConfirmPaymentInput{
		SalonID: e.salon.ID, PaymentID: p.ID, ProviderPaymentID: "7",
	})
	assert.True(t, httperr.IsBusiness(err, "payment_amount_mismatch"))

	stored, err := e.repo.GetPayment(context.Background(), e.salon.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestConfirmWithoutGateway(t *testing.T) {
	e := newEnv(t)

	_, err := NewConfirmPayment(e.repo, nil, notification.NopWaker{}).Execute(context.Background(), ConfirmPaymentInput{
		SalonID: e.salon.ID, PaymentID: uuid.New(),
	})
	assert.True(t, httperr.IsBusiness(err, "payments_disabled"))
}
