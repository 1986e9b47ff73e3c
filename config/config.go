package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string   `mapstructure:"APP_PORT"`
	Env               string   `mapstructure:"ENV"`
	LogLevel          string   `mapstructure:"LOG_LEVEL"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DatabaseName      string   `mapstructure:"DATABASE_NAME"`
	DatabaseTimeout   int      `mapstructure:"DATABASE_CONNECT_TIMEOUT"`
	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration (booked-slot cache; left empty to disable).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Appointment slot settings.
	SourceTimezone      string `mapstructure:"SOURCE_TIMEZONE"`
	TargetTimezone      string `mapstructure:"TARGET_TIMEZONE"`
	SlotDurationMinutes int    `mapstructure:"SLOT_DURATION_MINUTES"`

	// Optional pipeline steps.
	ProvisionMeeting bool `mapstructure:"PROVISION_MEETING"`
	SendNotification bool `mapstructure:"SEND_NOTIFICATION"`

	// Google Calendar OAuth2 credentials.
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`
	GoogleRefreshToken string `mapstructure:"GOOGLE_REFRESH_TOKEN"`
	GoogleCalendarID   string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// SMTP submission.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Clinic identity used on calendar invites and outgoing mail.
	ClinicName  string `mapstructure:"CLINIC_NAME"`
	ClinicEmail string `mapstructure:"CLINIC_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "clinicbook")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", 10)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("SOURCE_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("TARGET_TIMEZONE", "America/Los_Angeles")
	viper.SetDefault("SLOT_DURATION_MINUTES", 15)
	viper.SetDefault("PROVISION_MEETING", true)
	viper.SetDefault("SEND_NOTIFICATION", true)
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("CLINIC_NAME", "Aakar Clinic")
	// Keys without a meaningful default still need registering, or
	// AutomaticEnv never feeds them through Unmarshal.
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "")
	viper.SetDefault("GOOGLE_REFRESH_TOKEN", "")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("CLINIC_EMAIL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
