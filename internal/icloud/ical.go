package icloud

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"calbridge/internal/models"
)

// NewCalendar wraps event in a VCALENDAR ready to be PUT to a CalDAV collection.
// stamp is used as DTSTAMP.
func NewCalendar(event *models.CalendarEvent, stamp time.Time) (*ical.Calendar, error) {
	vevent, err := eventComponent(event, stamp)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//calbridge//EN")
	cal.Children = append(cal.Children, vevent)
	return cal, nil
}

func eventComponent(event *models.CalendarEvent, stamp time.Time) (*ical.Component, error) {
	if event.UID == "" {
		return nil, fmt.Errorf("event %s has no UID", event.ID)
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, event.UID)
	ve.Props.SetText(ical.PropSummary, event.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)

	if err := setEventTime(ve, ical.PropDateTimeStart, event.Start); err != nil {
		return nil, fmt.Errorf("event %s: %w", event.ID, err)
	}
	if err := setEventTime(ve, ical.PropDateTimeEnd, event.End); err != nil {
		return nil, fmt.Errorf("event %s: %w", event.ID, err)
	}

	description := event.Description
	if event.Conference != nil && event.Conference.Video != nil {
		join := event.Conference.Video.JoinURL.Value
		u := ical.NewProp(ical.PropURL)
		u.Value = join
		ve.Props.Set(u)
		if !strings.Contains(description, join) {
			if description != "" {
				description += "\n\n"
			}
			description += conferenceNote(event.Conference)
		}
	}
	if description != "" {
		ve.Props.SetText(ical.PropDescription, description)
	}
	if event.Location != "" {
		ve.Props.SetText(ical.PropLocation, event.Location)
	}
	if status := icalStatus(event.Status); status != "" {
		ve.Props.SetText(ical.PropStatus, status)
	}
	if event.Organizer != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.SetText(fmt.Sprintf("mailto:%s", event.Organizer))
		ve.Props.Add(p)
	}
	for _, attendee := range event.Attendees {
		if attendee.Email == "" {
			continue
		}
		p := ical.NewProp(ical.PropAttendee)
		p.SetText(fmt.Sprintf("mailto:%s", attendee.Email))
		if attendee.Name != "" {
			p.Params.Set(ical.ParamCommonName, attendee.Name)
		}
		p.Params.Set(ical.ParamParticipationStatus, partStat(attendee.Status))
		p.Params.Set(ical.ParamRole, role(attendee.Type))
		if attendee.Type == models.AttendeeResource {
			p.Params.Set(ical.ParamCalendarUserType, "RESOURCE")
		}
		ve.Props.Add(p)
	}
	return ve, nil
}

func setEventTime(ve *ical.Component, name string, t models.EventTime) error {
	switch {
	case t.Date != nil:
		ve.Props.SetDate(name, t.Date.In(time.UTC))
	case t.DateTime != nil:
		ve.Props.SetDateTime(name, t.DateTime.UTC())
	default:
		return fmt.Errorf("missing %s", strings.ToLower(name))
	}
	return nil
}

func conferenceNote(conf *models.Conference) string {
	var b strings.Builder
	name := conf.Name
	if name == "" {
		name = "Online meeting"
	}
	fmt.Fprintf(&b, "%s: %s", name, conf.Video.JoinURL.Value)
	for _, phone := range conf.Phone {
		fmt.Fprintf(&b, "\nPhone: %s", phone.JoinURL.Label)
		if phone.MeetingCode != "" {
			fmt.Fprintf(&b, " (PIN %s)", phone.MeetingCode)
		}
	}
	return b.String()
}

func partStat(s models.AttendeeStatus) string {
	switch s {
	case models.AttendeeAccepted:
		return "ACCEPTED"
	case models.AttendeeTentative:
		return "TENTATIVE"
	case models.AttendeeDeclined:
		return "DECLINED"
	default:
		return "NEEDS-ACTION"
	}
}

func role(t models.AttendeeType) string {
	switch t {
	case models.AttendeeOptional:
		return "OPT-PARTICIPANT"
	case models.AttendeeResource:
		return "NON-PARTICIPANT"
	default:
		return "REQ-PARTICIPANT"
	}
}

func icalStatus(s string) string {
	switch s {
	case "confirmed", "tentative", "cancelled":
		return strings.ToUpper(s)
	}
	return ""
}
