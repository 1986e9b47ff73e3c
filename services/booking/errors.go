package booking

import (
	"errors"
	"fmt"
)

// ValidationError marks bad or missing client input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// StorageError marks a failed or unreachable appointment store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ProvisioningError marks a failed calendar/meeting creation.
type ProvisioningError struct {
	Err error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("meeting provisioning: %v", e.Err)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }

// NotificationError marks a failed confirmation email. It never fails
// the booking outcome.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("confirmation email: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is user-correctable input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
