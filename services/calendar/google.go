package calendar

import (
	"context"
	"fmt"
	"time"

	"clinicbook/config"
	"clinicbook/models"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleMeetProvisioner creates Google Calendar events with an
// auto-generated Meet link, authenticated by a long-lived OAuth2
// refresh token.
type GoogleMeetProvisioner struct {
	svc        *gcal.Service
	calendarID string
	timeout    time.Duration
}

// NewGoogleMeetProvisioner builds the Calendar API client from the
// configured OAuth2 credentials.
func NewGoogleMeetProvisioner(ctx context.Context) (*GoogleMeetProvisioner, error) {
	cfg := config.AppConfig
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRefreshToken == "" {
		return nil, fmt.Errorf("google calendar credentials are not configured")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.GoogleRefreshToken})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return &GoogleMeetProvisioner{
		svc:        svc,
		calendarID: cfg.GoogleCalendarID,
		timeout:    10 * time.Second,
	}, nil
}

// CreateMeeting inserts the event with conference auto-creation and
// returns the generated Meet link.
func (p *GoogleMeetProvisioner) CreateMeeting(ctx context.Context, meeting models.Meeting) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	attendees := make([]*gcal.EventAttendee, 0, len(meeting.Attendees))
	for _, email := range meeting.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	event := &gcal.Event{
		Summary:     meeting.Summary,
		Location:    meeting.Location,
		Description: meeting.Description,
		Start: &gcal.EventDateTime{
			DateTime: meeting.Start.Format(time.RFC3339),
			TimeZone: meeting.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: meeting.End.Format(time.RFC3339),
			TimeZone: meeting.Timezone,
		},
		Attendees: attendees,
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: uuid.New().String(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := p.svc.Events.Insert(p.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctxWithTimeout).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}

	if created.HangoutLink != "" {
		return created.HangoutLink, nil
	}
	// Older conference records expose the link only through entry points.
	if created.ConferenceData != nil {
		for _, ep := range created.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" && ep.Uri != "" {
				return ep.Uri, nil
			}
		}
	}
	return "", fmt.Errorf("calendar event %s created without a meet link", created.Id)
}
