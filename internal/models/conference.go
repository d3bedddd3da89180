package models

// JoinURL is the address used to join a conference, with an optional display label.
type JoinURL struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label,omitempty"`
}

// EntryPoint is one way of joining a conference.
type EntryPoint struct {
	JoinURL     JoinURL `json:"joinUrl"`
	MeetingCode string  `json:"meetingCode,omitempty"`
	AccessCode  string  `json:"accessCode,omitempty"`
	Password    string  `json:"password,omitempty"`
	RegionCode  string  `json:"regionCode,omitempty"`
}

// Conference describes the online meeting attached to an event.
// ID is the canonical conferencing service id (for example "google-meet" or "zoom").
type Conference struct {
	ID           string       `json:"id,omitempty"`
	ConferenceID string       `json:"conferenceId,omitempty"`
	Name         string       `json:"name,omitempty"`
	Video        *EntryPoint  `json:"video,omitempty"`
	SIP          *EntryPoint  `json:"sip,omitempty"`
	Phone        []EntryPoint `json:"phone"`
}

// ConferenceInput is the conference part of an EventInput.
type ConferenceInput struct {
	ConferenceID string       `json:"conferenceId,omitempty"`
	Name         string       `json:"name,omitempty"`
	Video        *EntryPoint  `json:"video,omitempty"`
	SIP          *EntryPoint  `json:"sip,omitempty"`
	Phone        []EntryPoint `json:"phone,omitempty" validate:"dive"`
}
