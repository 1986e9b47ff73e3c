package calendar

import (
	"context"

	"clinicbook/models"
)

// Provisioner creates a video meeting for a booking and returns the
// join link.
type Provisioner interface {
	CreateMeeting(ctx context.Context, meeting models.Meeting) (string, error)
}
