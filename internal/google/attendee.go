package google

import (
	"google.golang.org/api/calendar/v3"

	"calbridge/internal/models"
)

const needsAction = "needsAction"

func decodeStatus(s string) models.AttendeeStatus {
	if s == "" || s == needsAction {
		return models.AttendeeUnknown
	}
	return models.AttendeeStatus(s)
}

func encodeStatus(s models.AttendeeStatus) string {
	if s == "" || s == models.AttendeeUnknown {
		return needsAction
	}
	return string(s)
}

func attendeeType(a *calendar.EventAttendee) models.AttendeeType {
	switch {
	case a.Resource:
		return models.AttendeeResource
	case a.Optional:
		return models.AttendeeOptional
	default:
		return models.AttendeeRequired
	}
}

// MapAttendee converts a Google event attendee to the domain Attendee.
func MapAttendee(a *calendar.EventAttendee) models.Attendee {
	return models.Attendee{
		ID:               a.Id,
		Email:            a.Email,
		Name:             a.DisplayName,
		Status:           decodeStatus(a.ResponseStatus),
		Type:             attendeeType(a),
		Comment:          a.Comment,
		AdditionalGuests: a.AdditionalGuests,
	}
}

// EncodeAttendee converts a domain Attendee to the Google request shape.
func EncodeAttendee(a models.Attendee) *calendar.EventAttendee {
	return &calendar.EventAttendee{
		Id:               a.ID,
		Email:            a.Email,
		DisplayName:      a.Name,
		ResponseStatus:   encodeStatus(a.Status),
		Optional:         a.Type == models.AttendeeOptional,
		Resource:         a.Type == models.AttendeeResource,
		Comment:          a.Comment,
		AdditionalGuests: a.AdditionalGuests,
	}
}
