package notification

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAppointmentBooked    Type = "appointment_booked"
	TypeAppointmentCancelled Type = "appointment_cancelled"
	TypeLowStock             Type = "low_stock"
	TypePaymentSucceeded     Type = "payment_succeeded"
)

// Event is what the core emits; delivery happens elsewhere.
type Event struct {
	SalonID  uuid.UUID
	Type     Type
	Title    string
	Message  string
	EntityID *uuid.UUID
}

func (e Event) Validate() error {
	if e.SalonID == uuid.Nil {
		return fmt.Errorf("notification %s: missing salon", e.Type)
	}
	if e.Type == "" || e.Title == "" {
		return fmt.Errorf("notification: type and title are required")
	}
	return nil
}

func AppointmentBooked(salonID, appointmentID uuid.UUID) Event {
	return Event{
		SalonID:  salonID,
		Type:     TypeAppointmentBooked,
		Title:    "New appointment booked",
		Message:  "A new appointment has been booked",
		EntityID: &appointmentID,
	}
}

func AppointmentCancelled(salonID, appointmentID uuid.UUID, reason string) Event {
	msg := "An appointment has been cancelled"
	if reason != "" {
		msg += ". Reason: " + reason
	}
	return Event{
		SalonID:  salonID,
		Type:     TypeAppointmentCancelled,
		Title:    "Appointment cancelled",
		Message:  msg,
		EntityID: &appointmentID,
	}
}

func LowStock(salonID, productID uuid.UUID, productName string, remaining int) Event {
	return Event{
		SalonID:  salonID,
		Type:     TypeLowStock,
		Title:    "Low stock alert",
		Message:  fmt.Sprintf("%s stock is low (%d remaining)", productName, remaining),
		EntityID: &productID,
	}
}

func PaymentSucceeded(salonID, paymentID uuid.UUID, currency string, amount decimal.Decimal) Event {
	return Event{
		SalonID:  salonID,
		Type:     TypePaymentSucceeded,
		Title:    "Payment received",
		Message:  fmt.Sprintf("Payment of %s %s received", currency, amount.StringFixed(2)),
		EntityID: &paymentID,
	}
}

// Waker is told that new events were committed to the outbox.
type Waker interface {
	Wake()
}

type NopWaker struct{}

func (NopWaker) Wake() {}
