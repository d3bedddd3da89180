package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// AttendeeStatus is an attendee's response to an invitation.
type AttendeeStatus string

const (
	AttendeeAccepted  AttendeeStatus = "accepted"
	AttendeeTentative AttendeeStatus = "tentative"
	AttendeeDeclined  AttendeeStatus = "declined"
	AttendeeUnknown   AttendeeStatus = "unknown"
)

// AttendeeType tells whether an attendee is required, optional or a resource (room, equipment).
type AttendeeType string

const (
	AttendeeRequired AttendeeType = "required"
	AttendeeOptional AttendeeType = "optional"
	AttendeeResource AttendeeType = "resource"
)

// Attendee is a single guest of an event.
type Attendee struct {
	ID               string         `json:"id,omitempty"`
	Email            string         `json:"email,omitempty" validate:"omitempty,email"`
	Name             string         `json:"name,omitempty"`
	Status           AttendeeStatus `json:"status" validate:"omitempty,oneof=accepted tentative declined unknown"`
	Type             AttendeeType   `json:"type" validate:"omitempty,oneof=required optional resource"`
	Comment          string         `json:"comment,omitempty"`
	AdditionalGuests int64          `json:"additionalGuests,omitempty" validate:"gte=0"`
}

// EventTime is the start or end of an event. Exactly one of DateTime and Date is set:
// Date for all-day events, DateTime otherwise. TimeZone carries the IANA zone id
// when the provider supplied one.
type EventTime struct {
	DateTime *time.Time  `json:"dateTime,omitempty"`
	Date     *civil.Date `json:"date,omitempty"`
	TimeZone string      `json:"timeZone,omitempty"`
}

// DateOnly returns an all-day EventTime.
func DateOnly(d civil.Date) EventTime {
	return EventTime{Date: &d}
}

// Instant returns an EventTime for t without a named zone.
func Instant(t time.Time) EventTime {
	return EventTime{DateTime: &t}
}

// Zoned returns an EventTime for t in the named zone.
func Zoned(t time.Time, zone string) EventTime {
	return EventTime{DateTime: &t, TimeZone: zone}
}

// IsDate reports whether t is a plain calendar date.
func (t EventTime) IsDate() bool {
	return t.Date != nil
}

// IsZero reports whether neither a date nor a date-time is set.
func (t EventTime) IsZero() bool {
	return t.Date == nil && t.DateTime == nil
}

// CalendarEvent is a provider-agnostic calendar event.
type CalendarEvent struct {
	ID          string          `json:"id"`
	UID         string          `json:"uid,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Start       EventTime       `json:"start"`
	End         EventTime       `json:"end"`
	AllDay      bool            `json:"allDay"`
	Location    string          `json:"location,omitempty"`
	Status      string          `json:"status,omitempty"`
	Organizer   string          `json:"organizer,omitempty"`
	Attendees   []Attendee      `json:"attendees"`
	URL         string          `json:"url,omitempty"`
	ProviderID  ProviderID      `json:"providerId"`
	AccountID   string          `json:"accountId"`
	CalendarID  string          `json:"calendarId"`
	ReadOnly    bool            `json:"readOnly"`
	Conference  *Conference     `json:"conference,omitempty"`
	Response    *AttendeeStatus `json:"response,omitempty"`
}

// EventInput creates an event when ID is empty and updates the event with that ID otherwise.
type EventInput struct {
	ID          string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Start       EventTime        `json:"start"`
	End         EventTime        `json:"end"`
	Location    string           `json:"location,omitempty"`
	Status      string           `json:"status,omitempty" validate:"omitempty,oneof=confirmed tentative cancelled"`
	Attendees   []Attendee       `json:"attendees,omitempty" validate:"dive"`
	Conference  *ConferenceInput `json:"conference,omitempty"`
}

// IsUpdate reports whether the input targets an existing event.
func (in EventInput) IsUpdate() bool {
	return in.ID != ""
}
