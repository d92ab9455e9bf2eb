package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	salon := uuid.New()
	entity := uuid.New()

	ev := LowStock(salon, entity, "Argan Oil", 7)
	assert.Equal(t, TypeLowStock, ev.Type)
	assert.Equal(t, "Argan Oil stock is low (7 remaining)", ev.Message)
	assert.Equal(t, entity, *ev.EntityID)
	assert.NoError(t, ev.Validate())

	ev = AppointmentCancelled(salon, entity, "client sick")
	assert.Equal(t, "An appointment has been cancelled. Reason: client sick", ev.Message)

	ev = PaymentSucceeded(salon, entity, "BRL", decimal.RequireFromString("49.9"))
	assert.Equal(t, "Payment of BRL 49.90 received", ev.Message)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Event{Type: TypeLowStock, Title: "x"}.Validate())
	assert.Error(t, Event{SalonID: uuid.New()}.Validate())
}
