package mailer

import (
	"strings"
	"testing"

	"clinicbook/models"
)

func TestRenderConfirmation(t *testing.T) {
	body, err := RenderConfirmation(models.Confirmation{
		To:       "patient@example.com",
		Name:     "Asha",
		Date:     "2024-06-01",
		Time:     "2:30 PM",
		MeetLink: "https://meet.google.com/abc-defg-hij",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Appointment Confirmation",
		"Dear Asha,",
		"2024-06-01",
		"2:30 PM",
		`href="https://meet.google.com/abc-defg-hij"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderConfirmationWithoutLink(t *testing.T) {
	body, err := RenderConfirmation(models.Confirmation{
		Name: "Asha",
		Date: "2024-06-01",
		Time: "2:30 PM",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "Google Meet Link") {
		t.Errorf("body mentions a meet link that was never provisioned:\n%s", body)
	}
}

func TestRenderConfirmationEscapesName(t *testing.T) {
	body, err := RenderConfirmation(models.Confirmation{
		Name: "<script>alert(1)</script>",
		Date: "2024-06-01",
		Time: "2:30 PM",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("name not escaped")
	}
}
