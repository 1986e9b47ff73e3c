package appointmentRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrSlotTaken is returned by Insert when another appointment already
// holds the same (date, time) pair.
var ErrSlotTaken = errors.New("slot already booked")

// Repository defines persistence for appointment slots.
type Repository interface {
	// Exists reports whether an appointment is stored for the exact
	// (date, time) pair.
	Exists(ctx context.Context, date, timeStr string) (bool, error)
	// Insert persists a new appointment. Returns ErrSlotTaken when the
	// unique (date, time) index rejects the write.
	Insert(ctx context.Context, appt *models.Appointment) error
	// ListTimesByDate returns every booked time string for a date.
	ListTimesByDate(ctx context.Context, date string) ([]string, error)
}
