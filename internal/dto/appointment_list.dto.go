package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID         uuid.UUID  `json:"id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    time.Time  `json:"end_time"`
	Status     string     `json:"status"`
	ClientName string     `json:"client_name"`
	StaffID    *uuid.UUID `json:"staff_id,omitempty"`
	StaffName  string     `json:"staff_name,omitempty"`
}
