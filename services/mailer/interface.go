package mailer

import (
	"context"

	"clinicbook/models"
)

// Mailer delivers booking confirmation messages.
type Mailer interface {
	SendConfirmation(ctx context.Context, conf models.Confirmation) error
}
