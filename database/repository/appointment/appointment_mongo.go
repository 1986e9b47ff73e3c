package appointmentRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements Repository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs the repository and bootstraps its
// indexes.
func NewMongoAppointmentRepo() Repository {
	repo := &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	// The unique slot index backs double-booking protection, so a
	// failure here is not survivable.
	if err := repo.ensureIndexes(); err != nil {
		log.Fatalf("appointment repo: %v", err)
	}
	return repo
}

// Exists reports whether an appointment document holds the given slot.
func (repo *MongoAppointmentRepo) Exists(ctx context.Context, date, timeStr string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "time": timeStr}
	count, err := repo.coll.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return false, fmt.Errorf("error checking slot %s %s: %w", date, timeStr, err)
	}
	return count > 0, nil
}

// Insert persists a new appointment document. The unique (date, time)
// index turns a concurrent double-book into ErrSlotTaken.
func (repo *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, appt)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// ListTimesByDate returns the booked time strings for a date.
func (repo *MongoAppointmentRepo) ListTimesByDate(ctx context.Context, date string) ([]string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("error fetching slots for %s: %w", date, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var times []string
	for cursor.Next(ctxWithTimeout) {
		var appt models.Appointment
		if err := cursor.Decode(&appt); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		times = append(times, appt.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return times, nil
}
