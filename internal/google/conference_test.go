package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"calbridge/internal/models"
)

func TestEncodeConference_EntryPointOrderAndAliases(t *testing.T) {
	cd := EncodeConference(models.ConferenceInput{
		Video: &models.EntryPoint{
			JoinURL:     models.JoinURL{Value: "https://meet.google.com/abc-defg-hij", Label: "meet.google.com/abc-defg-hij"},
			MeetingCode: "abc-defg-hij",
		},
		SIP: &models.EntryPoint{
			JoinURL:  models.JoinURL{Value: "sip:123@meet.example"},
			Password: "9876",
		},
		Phone: []models.EntryPoint{
			{JoinURL: models.JoinURL{Value: "15551234567"}, Password: "4321", RegionCode: "US"},
			{JoinURL: models.JoinURL{Value: "tel:555"}},
		},
	})

	require.Len(t, cd.EntryPoints, 4)
	assert.Equal(t, "video", cd.EntryPoints[0].EntryPointType)
	assert.Equal(t, "sip", cd.EntryPoints[1].EntryPointType)
	assert.Equal(t, "phone", cd.EntryPoints[2].EntryPointType)
	assert.Equal(t, "phone", cd.EntryPoints[3].EntryPointType)

	assert.Equal(t, "abc-defg-hij", cd.EntryPoints[0].MeetingCode)
	assert.Equal(t, "abc-defg-hij", cd.EntryPoints[0].AccessCode)
	assert.Equal(t, "9876", cd.EntryPoints[1].Password)
	assert.Equal(t, "9876", cd.EntryPoints[1].Pin)

	assert.Equal(t, "tel:15551234567", cd.EntryPoints[2].Uri)
	assert.Equal(t, "US", cd.EntryPoints[2].RegionCode)
	assert.Equal(t, "tel:555", cd.EntryPoints[3].Uri)
}

func TestEncodeConference_Solution(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantType string
	}{
		{"default", "", "Google Meet", "hangoutsMeet"},
		{"google named", "GOOGLE Hangouts", "GOOGLE Hangouts", "hangoutsMeet"},
		{"add-on", "Zoom Meeting", "Zoom Meeting", "addOn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := EncodeConference(models.ConferenceInput{Name: tt.input})
			require.NotNil(t, cd.ConferenceSolution)
			assert.Equal(t, tt.wantName, cd.ConferenceSolution.Name)
			assert.Equal(t, tt.wantType, cd.ConferenceSolution.Key.Type)
			assert.Empty(t, cd.EntryPoints)
		})
	}
}

func TestConference_RoundTrip(t *testing.T) {
	a := newTestAdapter()
	in := models.ConferenceInput{
		ConferenceID: "abc-defg-hij",
		Video: &models.EntryPoint{
			JoinURL:     models.JoinURL{Value: "https://meet.google.com/abc-defg-hij", Label: "meet.google.com/abc-defg-hij"},
			MeetingCode: "abc-defg-hij",
			Password:    "secret",
		},
		SIP: &models.EntryPoint{
			JoinURL:     models.JoinURL{Value: "sip:123@meet.example", Label: "123@meet.example"},
			MeetingCode: "77",
		},
		Phone: []models.EntryPoint{
			{JoinURL: models.JoinURL{Value: "tel:+1-555-123-4567", Label: "+1 555-123-4567"}, MeetingCode: "123456", AccessCode: "42", RegionCode: "US"},
			{JoinURL: models.JoinURL{Value: "tel:+15550001", Label: "+15550001"}, AccessCode: "42"},
		},
	}

	conf := a.MapConference(&calendar.Event{ConferenceData: EncodeConference(in)})
	require.NotNil(t, conf)

	assert.Equal(t, "google-meet", conf.ID)
	assert.Equal(t, "abc-defg-hij", conf.ConferenceID)
	assert.Equal(t, "Google Meet", conf.Name)
	assert.Equal(t, *in.Video, *conf.Video)
	assert.Equal(t, *in.SIP, *conf.SIP)
	assert.Equal(t, in.Phone, conf.Phone)
}

func TestMapConference_Structured(t *testing.T) {
	a := newTestAdapter()

	conf := a.MapConference(&calendar.Event{
		ConferenceData: &calendar.ConferenceData{
			ConferenceId: "conf-1",
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "video", Uri: "https://zoom.us/j/123456789", Pin: "111"},
				{EntryPointType: "video", Uri: "https://zoom.us/j/999999999"},
				{EntryPointType: "phone", Uri: ""},
				{EntryPointType: "phone", Uri: "tel:+15550001111", AccessCode: "123456"},
				{EntryPointType: "phone", Uri: "tel:+15550002222", Passcode: "9090"},
				{EntryPointType: "more", Uri: "https://example.com/more"},
			},
		},
	})
	require.NotNil(t, conf)

	assert.Equal(t, "zoom", conf.ID)
	assert.Equal(t, "Zoom", conf.Name)
	require.NotNil(t, conf.Video)
	assert.Equal(t, "https://zoom.us/j/123456789", conf.Video.JoinURL.Value)
	assert.Equal(t, "zoom.us/j/123456789", conf.Video.JoinURL.Label)
	assert.Equal(t, "111", conf.Video.Password)
	assert.Nil(t, conf.SIP)

	require.Len(t, conf.Phone, 2)
	assert.Equal(t, "+15550001111", conf.Phone[0].JoinURL.Label)
	assert.Empty(t, conf.Phone[0].MeetingCode)
	assert.Equal(t, "123456", conf.Phone[0].AccessCode)
	assert.Equal(t, "9090", conf.Phone[1].Password)
	assert.Empty(t, conf.Phone[1].MeetingCode)
}

func TestMapConference_Fallback(t *testing.T) {
	a := newTestAdapter()

	tests := []struct {
		name   string
		event  *calendar.Event
		wantID string
		join   string
	}{
		{
			name:   "description",
			event:  &calendar.Event{Description: `Join <a href="https://zoom.us/j/555666777">here</a>`},
			wantID: "zoom",
			join:   "https://zoom.us/j/555666777",
		},
		{
			name: "hangout link wins over description",
			event: &calendar.Event{
				HangoutLink: "https://meet.google.com/aaa-bbbb-ccc",
				Description: "https://zoom.us/j/555666777",
			},
			wantID: "google-meet",
			join:   "https://meet.google.com/aaa-bbbb-ccc",
		},
		{
			name: "description wins over location",
			event: &calendar.Event{
				Description: "see https://meet.jit.si/daily",
				Location:    "https://zoom.us/j/555666777",
			},
			wantID: "jitsi",
			join:   "https://meet.jit.si/daily",
		},
		{
			name:   "location",
			event:  &calendar.Event{Description: "https://example.com/agenda", Location: "Room 1 / https://whereby.com/standup"},
			wantID: "whereby",
			join:   "https://whereby.com/standup",
		},
		{
			name:   "source url",
			event:  &calendar.Event{Source: &calendar.EventSource{Url: "https://teams.microsoft.com/l/meetup-join/abc"}},
			wantID: "microsoft-teams",
			join:   "https://teams.microsoft.com/l/meetup-join/abc",
		},
		{
			name: "attachments before gadget",
			event: &calendar.Event{
				Attachments: []*calendar.EventAttachment{{FileUrl: "https://docs.example.com/x"}, {FileUrl: "https://meet.jit.si/attached"}},
				Gadget:      &calendar.EventGadget{Link: "https://zoom.us/j/123123123"},
			},
			wantID: "jitsi",
			join:   "https://meet.jit.si/attached",
		},
		{
			name:   "gadget",
			event:  &calendar.Event{Gadget: &calendar.EventGadget{Link: "https://zoom.us/j/123123123"}},
			wantID: "zoom",
			join:   "https://zoom.us/j/123123123",
		},
		{
			name:   "upper-case link in description",
			event:  &calendar.Event{Description: "Call: HTTPS://Meet.Google.com/abc-defg-hij"},
			wantID: "google-meet",
			join:   "https://meet.google.com/abc-defg-hij",
		},
		{
			name:   "empty entry points fall back",
			event:  &calendar.Event{ConferenceData: &calendar.ConferenceData{}, Location: "https://zoom.us/j/321321321"},
			wantID: "zoom",
			join:   "https://zoom.us/j/321321321",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := a.MapConference(tt.event)
			require.NotNil(t, conf)
			assert.Equal(t, tt.wantID, conf.ID)
			require.NotNil(t, conf.Video)
			assert.Equal(t, tt.join, conf.Video.JoinURL.Value)
			assert.NotNil(t, conf.Phone)
		})
	}
}

func TestMapConference_None(t *testing.T) {
	a := newTestAdapter()

	assert.Nil(t, a.MapConference(&calendar.Event{
		Description: "Lunch at https://example.com/menu",
		Location:    "Cafeteria",
	}))
}

func TestShortenJoinURL(t *testing.T) {
	assert.Equal(t, "meet.google.com/abc-defg-hij", shortenJoinURL("https://meet.google.com/abc-defg-hij"))
	assert.Equal(t, "+15551234567", shortenJoinURL("tel:+15551234567"))
	assert.Equal(t, "123@meet.example", shortenJoinURL("sip:123@meet.example"))
	assert.Equal(t, "://bad", shortenJoinURL("://bad"))
	assert.Equal(t, "", shortenJoinURL(""))
}
