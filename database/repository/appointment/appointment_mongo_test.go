package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setup connects to the Mongo instance named by DATABASE_URL and skips
// otherwise, so the suite stays runnable without infrastructure.
func setup(t *testing.T) Repository {
	t.Helper()
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo unreachable: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	database.MongoClient = client
	return NewMongoAppointmentRepo()
}

// testDate returns a date unique to this test run so parallel runs
// against a shared instance cannot collide.
func testDate(t *testing.T) string {
	t.Helper()
	date := fmt.Sprintf("2199-%02d-%02d", 1+len(t.Name())%12, 1+len(t.Name())%28)
	coll := database.DB().Collection("appointments")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = coll.DeleteMany(ctx, bson.M{"date": date})
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = coll.DeleteMany(ctx, bson.M{"date": date})
	return date
}

func newAppt(date, clock string) *models.Appointment {
	return &models.Appointment{
		ID:        uuid.New().String(),
		Name:      "Test Patient",
		Email:     "patient@example.com",
		Date:      date,
		Time:      clock,
		CreatedAt: time.Now().UTC(),
	}
}

func TestInsertAndExists(t *testing.T) {
	repo := setup(t)
	date := testDate(t)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, date, "2:30 PM")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("slot reported taken before insert")
	}

	if err := repo.Insert(ctx, newAppt(date, "2:30 PM")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ok, err = repo.Exists(ctx, date, "2:30 PM")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("slot not found after insert")
	}
}

func TestInsertDuplicateSlot(t *testing.T) {
	repo := setup(t)
	date := testDate(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt(date, "2:30 PM")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := repo.Insert(ctx, newAppt(date, "2:30 PM"))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("duplicate insert: err = %v, want ErrSlotTaken", err)
	}
}

func TestListTimesByDate(t *testing.T) {
	repo := setup(t)
	date := testDate(t)
	ctx := context.Background()

	for _, clock := range []string{"9:00 AM", "2:30 PM"} {
		if err := repo.Insert(ctx, newAppt(date, clock)); err != nil {
			t.Fatalf("insert %s: %v", clock, err)
		}
	}

	times, err := repo.ListTimesByDate(ctx, date)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(times) != 2 {
		t.Fatalf("times = %v, want 2 entries", times)
	}
}
