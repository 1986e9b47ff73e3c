package database

import (
	"context"
	"log"
	"strings"
	"time"

	"clinicbook/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection using the configured URI
// and connect timeout.
func InitDB() {
	cfg := config.AppConfig
	if !strings.HasPrefix(cfg.DatabaseURL, "mongodb://") && !strings.HasPrefix(cfg.DatabaseURL, "mongodb+srv://") {
		log.Fatalf("DATABASE_URL %q is not a mongodb URI", cfg.DatabaseURL)
	}

	timeout := time.Duration(cfg.DatabaseTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Printf("Connected to MongoDB database %q", databaseName())
}

// DB returns the handle for the configured application database.
func DB() *mongo.Database {
	return MongoClient.Database(databaseName())
}

func databaseName() string {
	if name := config.AppConfig.DatabaseName; name != "" {
		return name
	}
	return "clinicbook"
}
