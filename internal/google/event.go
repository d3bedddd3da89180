package google

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"google.golang.org/api/calendar/v3"

	"calbridge/internal/models"
)

// MapEvent converts a Google event from cal to the domain CalendarEvent.
// An event whose start has no time of day is all-day and both ends are parsed as dates.
func (a *Adapter) MapEvent(cal models.Calendar, accountID string, ev *calendar.Event) (*models.CalendarEvent, error) {
	if ev == nil || ev.Id == "" {
		return nil, missing("event", "id", "")
	}
	if ev.Start == nil || (ev.Start.DateTime == "" && ev.Start.Date == "") {
		return nil, missing("event", "start", ev.Id)
	}

	allDay := ev.Start.DateTime == ""
	start, err := parseEventTime(ev.Start, allDay)
	if err != nil {
		return nil, fmt.Errorf("event %s: invalid start: %w", ev.Id, err)
	}
	end := start
	if ev.End != nil {
		end, err = parseEventTime(ev.End, allDay)
		if err != nil {
			return nil, fmt.Errorf("event %s: invalid end: %w", ev.Id, err)
		}
	}

	attendees := make([]models.Attendee, 0, len(ev.Attendees))
	var response *models.AttendeeStatus
	for _, at := range ev.Attendees {
		if at == nil {
			continue
		}
		mapped := MapAttendee(at)
		if at.Self && response == nil {
			status := mapped.Status
			response = &status
		}
		attendees = append(attendees, mapped)
	}

	event := &models.CalendarEvent{
		ID:          ev.Id,
		UID:         ev.ICalUID,
		Title:       ev.Summary,
		Description: ev.Description,
		Start:       start,
		End:         end,
		AllDay:      allDay,
		Location:    ev.Location,
		Status:      ev.Status,
		Attendees:   attendees,
		URL:         ev.HtmlLink,
		ProviderID:  models.ProviderGoogle,
		AccountID:   accountID,
		CalendarID:  cal.ID,
		ReadOnly:    cal.ReadOnly || ev.Locked,
		Conference:  a.MapConference(ev),
		Response:    response,
	}
	if ev.Organizer != nil {
		event.Organizer = ev.Organizer.Email
	}
	return event, nil
}

func parseEventTime(dt *calendar.EventDateTime, allDay bool) (models.EventTime, error) {
	if allDay {
		s := dt.Date
		if s == "" && len(dt.DateTime) >= 10 {
			s = dt.DateTime[:10]
		}
		d, err := civil.ParseDate(s)
		if err != nil {
			return models.EventTime{}, err
		}
		return models.DateOnly(d), nil
	}

	t, err := time.Parse(time.RFC3339, dt.DateTime)
	if err != nil {
		return models.EventTime{}, err
	}
	if dt.TimeZone == "" {
		return models.Instant(t), nil
	}
	// Unknown zone ids keep the offset the provider sent.
	if loc, err := time.LoadLocation(dt.TimeZone); err == nil {
		t = t.In(loc)
	}
	return models.Zoned(t, dt.TimeZone), nil
}

func encodeEventTime(t models.EventTime) *calendar.EventDateTime {
	if t.Date != nil {
		return &calendar.EventDateTime{Date: t.Date.String()}
	}
	return &calendar.EventDateTime{
		DateTime: t.DateTime.Format(time.RFC3339),
		TimeZone: t.TimeZone,
	}
}

// EventRequest is a Google event request body. ConferenceDataVersion must be sent as the
// conferenceDataVersion query parameter of the insert or update call.
type EventRequest struct {
	Event                 *calendar.Event
	ConferenceDataVersion int64
}

// EncodeEvent converts a domain EventInput to a Google request body.
// The id is only set for updates.
func (a *Adapter) EncodeEvent(in models.EventInput) (*EventRequest, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid event input: %w", err)
	}
	if in.Start.IsZero() {
		return nil, missing("event input", "start", in.ID)
	}
	if in.End.IsZero() {
		return nil, missing("event input", "end", in.ID)
	}
	if in.Start.IsDate() != in.End.IsDate() {
		return nil, &MappingError{Entity: "event input", Field: "end", ID: in.ID, Err: ErrMixedEventTimes}
	}

	ev := &calendar.Event{
		Summary:     in.Title,
		Description: in.Description,
		Location:    in.Location,
		Status:      in.Status,
		Start:       encodeEventTime(in.Start),
		End:         encodeEventTime(in.End),
	}
	if in.IsUpdate() {
		ev.Id = in.ID
	}
	for _, at := range in.Attendees {
		ev.Attendees = append(ev.Attendees, EncodeAttendee(at))
	}

	req := &EventRequest{Event: ev}
	if in.Conference != nil {
		ev.ConferenceData = EncodeConference(*in.Conference)
		req.ConferenceDataVersion = 1
	}
	return req, nil
}
