package models

import "time"

// Appointment is a confirmed booking record. One document per booked slot.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Date      string    `bson:"date" json:"date"` // canonical "YYYY-MM-DD"
	Time      string    `bson:"time" json:"time"` // as submitted, "h:mm A" (e.g. "2:30 PM")
	MeetLink  string    `bson:"meet_link,omitempty" json:"meetLink,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BookingRequest is the validated booking submission.
type BookingRequest struct {
	Date  string `json:"selectedDate" binding:"required"`
	Time  string `json:"selectedTime" binding:"required"`
	Email string `json:"selectedEmail" binding:"required,email"`
	Name  string `json:"selectedName" binding:"required"`
}

// BookingResult reports the outcome of one booking attempt.
type BookingResult struct {
	AlreadyBooked bool
	Appointment   *Appointment
	MeetLink      string
	// EmailFailed is set when the confirmation email was attempted but
	// not delivered; the booking itself is committed at that point.
	EmailFailed bool
}

// Confirmation carries everything the mailer needs to render and send
// one confirmation message.
type Confirmation struct {
	To       string
	Name     string
	Date     string
	Time     string
	MeetLink string
}
