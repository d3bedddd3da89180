package google

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"calbridge/internal/models"
)

func TestMapCalendar(t *testing.T) {
	cal, err := MapCalendar("acc", &calendar.CalendarListEntry{
		Id:              "team@example.com",
		Summary:         "Team",
		SummaryOverride: "My team",
		Description:     "shared",
		TimeZone:        "Europe/Lisbon",
		AccessRole:      "owner",
		BackgroundColor: "#9fe1e7",
		Primary:         true,
	})
	require.NoError(t, err)

	assert.Equal(t, models.Calendar{
		ID:          "team@example.com",
		ProviderID:  models.ProviderGoogle,
		Name:        "My team",
		Description: "shared",
		TimeZone:    "Europe/Lisbon",
		Primary:     true,
		AccountID:   "acc",
		Color:       "#9fe1e7",
	}, cal)
}

func TestMapCalendar_ReadOnly(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"owner", false},
		{"writer", false},
		{"reader", true},
		{"freeBusyReader", true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			cal, err := MapCalendar("acc", &calendar.CalendarListEntry{Id: "c", AccessRole: tt.role})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cal.ReadOnly)
		})
	}
}

func TestMapCalendar_MissingID(t *testing.T) {
	_, err := MapCalendar("acc", &calendar.CalendarListEntry{Summary: "nameless"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, `calendar: missing required field "id"`, err.Error())

	_, err = MapCalendar("acc", nil)
	assert.ErrorIs(t, err, ErrMissingField)
}
