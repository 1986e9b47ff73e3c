package config

import "testing"

func TestLoadConfigCredentialsFromEnv(t *testing.T) {
	// Credentials have no config-file entry in an env-only deployment;
	// they must still survive the viper round trip.
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "https://example.com/oauth")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh-token")
	t.Setenv("SMTP_USER", "clinic@example.com")
	t.Setenv("SMTP_PASSWORD", "app-password")
	t.Setenv("CLINIC_EMAIL", "frontdesk@example.com")

	LoadConfig()

	cases := []struct {
		name, got, want string
	}{
		{"GoogleClientID", AppConfig.GoogleClientID, "client-id"},
		{"GoogleClientSecret", AppConfig.GoogleClientSecret, "client-secret"},
		{"GoogleRedirectURI", AppConfig.GoogleRedirectURI, "https://example.com/oauth"},
		{"GoogleRefreshToken", AppConfig.GoogleRefreshToken, "refresh-token"},
		{"SMTPUser", AppConfig.SMTPUser, "clinic@example.com"},
		{"SMTPPassword", AppConfig.SMTPPassword, "app-password"},
		{"ClinicEmail", AppConfig.ClinicEmail, "frontdesk@example.com"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %q, env value lost (want %q)", tc.name, tc.got, tc.want)
		}
	}
}

func TestLoadConfigEnvOverridesDefault(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.net")
	t.Setenv("SOURCE_TIMEZONE", "Asia/Dubai")

	LoadConfig()

	if AppConfig.SMTPHost != "smtp.example.net" {
		t.Errorf("SMTPHost = %q, want env override", AppConfig.SMTPHost)
	}
	if AppConfig.SourceTimezone != "Asia/Dubai" {
		t.Errorf("SourceTimezone = %q, want env override", AppConfig.SourceTimezone)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.AppPort != "8080" {
		t.Errorf("AppPort = %q, want default 8080", AppConfig.AppPort)
	}
	if AppConfig.DatabaseName != "clinicbook" {
		t.Errorf("DatabaseName = %q, want default clinicbook", AppConfig.DatabaseName)
	}
	if AppConfig.SlotDurationMinutes != 15 {
		t.Errorf("SlotDurationMinutes = %d, want 15", AppConfig.SlotDurationMinutes)
	}
	if !AppConfig.ProvisionMeeting || !AppConfig.SendNotification {
		t.Error("optional steps should default to enabled")
	}
}
