package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/services/calendar"
	"clinicbook/services/mailer"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// slotCacheTTL bounds how stale a cached booked-slots list may be.
const slotCacheTTL = 60 * time.Second

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Repo        appointmentRepo.Repository
	Resolver    *SlotResolver
	Provisioner calendar.Provisioner // nil when meeting provisioning is disabled
	Mailer      mailer.Mailer        // nil when notification is disabled
	Cache       SlotCache            // nil when no redis is configured

	// Step toggles. Provisioning requires a Provisioner, notification
	// a Mailer; a flag set without its collaborator is a wiring bug.
	ProvisionMeeting bool
	SendNotification bool

	// Clinic identity attached to calendar invites.
	ClinicName  string
	ClinicEmail string
}

// BookAppointment runs the booking pipeline. Steps execute strictly in
// order and each is attempted at most once. A taken slot is a normal
// outcome (AlreadyBooked), not an error.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	slot, err := s.Resolver.Resolve(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.Exists(ctx, slot.Date, req.Time)
	if err != nil {
		return nil, &StorageError{Op: "exists", Err: err}
	}
	if taken {
		return &models.BookingResult{AlreadyBooked: true}, nil
	}

	var meetLink string
	if s.ProvisionMeeting {
		// Fail-fast: a calendar failure aborts before anything is
		// persisted.
		meetLink, err = s.Provisioner.CreateMeeting(ctx, models.Meeting{
			Summary:     "Appointment",
			Location:    "Google Meet",
			Description: fmt.Sprintf("Scheduled meeting with %s", s.ClinicName),
			Start:       slot.Start,
			End:         slot.End,
			Timezone:    slot.TargetZone,
			Attendees:   []string{req.Email, s.ClinicEmail},
		})
		if err != nil {
			return nil, &ProvisioningError{Err: err}
		}
	}

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Date:      slot.Date,
		Time:      req.Time,
		MeetLink:  meetLink,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, appt); err != nil {
		// The unique slot index closes the gap between the existence
		// check above and this insert.
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return &models.BookingResult{AlreadyBooked: true}, nil
		}
		return nil, &StorageError{Op: "insert", Err: err}
	}

	result := &models.BookingResult{
		Appointment: appt,
		MeetLink:    meetLink,
	}

	if s.SendNotification {
		// The booking is committed; a delivery failure is logged and
		// reported, never rolled back.
		if err := s.Mailer.SendConfirmation(ctx, models.Confirmation{
			To:       req.Email,
			Name:     req.Name,
			Date:     slot.Date,
			Time:     req.Time,
			MeetLink: meetLink,
		}); err != nil {
			notifErr := &NotificationError{Err: err}
			logger.Warn("confirmation email failed after persist",
				zap.String("date", slot.Date),
				zap.String("time", req.Time),
				zap.Error(notifErr),
			)
			result.EmailFailed = true
		}
	}

	s.invalidateSlotCache(ctx, slot.Date)
	return result, nil
}

// BookedTimes lists the booked time strings for a date, consulting the
// redis cache when one is configured.
func (s *DefaultBookingService) BookedTimes(ctx context.Context, rawDate string) ([]string, error) {
	date, err := CanonicalDate(rawDate)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cachedSlots(ctx, date); ok {
		return cached, nil
	}

	times, err := s.Repo.ListTimesByDate(ctx, date)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	if times == nil {
		times = []string{}
	}

	s.storeSlotCache(ctx, date, times)
	return times, nil
}

func validateRequest(req models.BookingRequest) error {
	switch {
	case req.Name == "":
		return NewValidationError("selectedName", "is required")
	case req.Email == "":
		return NewValidationError("selectedEmail", "is required")
	case req.Date == "":
		return NewValidationError("selectedDate", "is required")
	case req.Time == "":
		return NewValidationError("selectedTime", "is required")
	}
	return nil
}

func slotCacheKey(date string) string {
	return "booked-slots:" + date
}

func (s *DefaultBookingService) cachedSlots(ctx context.Context, date string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, ok := s.Cache.Get(ctx, slotCacheKey(date))
	if !ok {
		return nil, false
	}
	var times []string
	if err := json.Unmarshal([]byte(data), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (s *DefaultBookingService) storeSlotCache(ctx context.Context, date string, times []string) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(times)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, slotCacheKey(date), string(data), slotCacheTTL)
}

func (s *DefaultBookingService) invalidateSlotCache(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Del(ctx, slotCacheKey(date))
}
