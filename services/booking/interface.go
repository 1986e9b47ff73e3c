package booking

import (
	"context"

	"clinicbook/models"
)

// Service is the booking orchestrator: it sequences time resolution,
// conflict checking, meeting provisioning, persistence, and the
// confirmation email for one request.
type Service interface {
	BookAppointment(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	BookedTimes(ctx context.Context, date string) ([]string, error)
}
