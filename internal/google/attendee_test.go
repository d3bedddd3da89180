package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/calendar/v3"

	"calbridge/internal/models"
)

func TestAttendeeStatus(t *testing.T) {
	tests := []struct {
		provider string
		domain   models.AttendeeStatus
	}{
		{"needsAction", models.AttendeeUnknown},
		{"accepted", models.AttendeeAccepted},
		{"tentative", models.AttendeeTentative},
		{"declined", models.AttendeeDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			assert.Equal(t, tt.domain, decodeStatus(tt.provider))
			assert.Equal(t, tt.provider, encodeStatus(tt.domain))
		})
	}

	assert.Equal(t, models.AttendeeUnknown, decodeStatus(""))
	assert.Equal(t, "needsAction", encodeStatus(""))
}

func TestMapAttendee_Type(t *testing.T) {
	tests := []struct {
		name     string
		resource bool
		optional bool
		want     models.AttendeeType
	}{
		{"required by default", false, false, models.AttendeeRequired},
		{"optional", false, true, models.AttendeeOptional},
		{"resource", true, false, models.AttendeeResource},
		{"resource beats optional", true, true, models.AttendeeResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MapAttendee(&calendar.EventAttendee{Resource: tt.resource, Optional: tt.optional})
			assert.Equal(t, tt.want, a.Type)
		})
	}
}

func TestAttendee_RoundTrip(t *testing.T) {
	in := models.Attendee{
		ID:               "att1",
		Email:            "guest@example.com",
		Name:             "Guest",
		Status:           models.AttendeeTentative,
		Type:             models.AttendeeOptional,
		Comment:          "might be late",
		AdditionalGuests: 2,
	}

	assert.Equal(t, in, MapAttendee(EncodeAttendee(in)))
}
