package google

import (
	"google.golang.org/api/calendar/v3"

	"calbridge/internal/models"
)

// MapCalendar converts a calendar-list entry to the domain Calendar.
// Calendars the account can only read or see free/busy for are read-only.
func MapCalendar(accountID string, entry *calendar.CalendarListEntry) (models.Calendar, error) {
	if entry == nil || entry.Id == "" {
		return models.Calendar{}, missing("calendar", "id", "")
	}

	name := entry.SummaryOverride
	if name == "" {
		name = entry.Summary
	}

	return models.Calendar{
		ID:          entry.Id,
		ProviderID:  models.ProviderGoogle,
		Name:        name,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccountID:   accountID,
		Color:       entry.BackgroundColor,
		ReadOnly:    entry.AccessRole == "reader" || entry.AccessRole == "freeBusyReader",
	}, nil
}
