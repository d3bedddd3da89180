package google

import (
	"net/url"
	"strings"

	"google.golang.org/api/calendar/v3"

	"calbridge/internal/meeting"
	"calbridge/internal/models"
)

const (
	entryPointVideo = "video"
	entryPointSIP   = "sip"
	entryPointPhone = "phone"

	defaultSolutionName  = "Google Meet"
	solutionHangoutsMeet = "hangoutsMeet"
	solutionAddOn        = "addOn"
)

// codeAliases lists entry point fields Google renamed (accessCode -> meetingCode,
// pin -> password). Both names are written on requests; the current name wins when reading.
// accessCode is also a domain field of its own, so it is never read back as the meeting code.
var codeAliases = []struct {
	domain     func(*models.EntryPoint) *string
	current    func(*calendar.EntryPoint) *string
	legacy     func(*calendar.EntryPoint) *string
	readLegacy bool
}{
	{
		domain:  func(e *models.EntryPoint) *string { return &e.MeetingCode },
		current: func(e *calendar.EntryPoint) *string { return &e.MeetingCode },
		legacy:  func(e *calendar.EntryPoint) *string { return &e.AccessCode },
	},
	{
		domain:     func(e *models.EntryPoint) *string { return &e.Password },
		current:    func(e *calendar.EntryPoint) *string { return &e.Password },
		legacy:     func(e *calendar.EntryPoint) *string { return &e.Pin },
		readLegacy: true,
	},
}

// MapConference returns the conference attached to ev, or nil when none is found.
// Structured conference data is preferred. Without it the event's text and link fields
// are scanned for a known meeting link.
func (a *Adapter) MapConference(ev *calendar.Event) *models.Conference {
	if ev.ConferenceData != nil && len(ev.ConferenceData.EntryPoints) > 0 {
		return a.mapConferenceData(ev.ConferenceData)
	}
	return a.findConferenceLink(ev)
}

func (a *Adapter) mapConferenceData(cd *calendar.ConferenceData) *models.Conference {
	conf := &models.Conference{
		ConferenceID: cd.ConferenceId,
		Phone:        []models.EntryPoint{},
	}
	if cd.ConferenceSolution != nil {
		conf.Name = cd.ConferenceSolution.Name
	}

	for _, ep := range cd.EntryPoints {
		if ep == nil {
			continue
		}
		switch ep.EntryPointType {
		case entryPointVideo:
			if conf.Video != nil {
				a.logger.Debug("Ignoring extra video entry point", "conferenceId", cd.ConferenceId, "uri", ep.Uri)
				continue
			}
			e := decodeEntryPoint(ep)
			conf.Video = &e
			if s, ok := a.detector.Detect(ep.Uri); ok {
				conf.ID = s.ID
				if conf.Name == "" {
					conf.Name = s.Name
				}
			}
		case entryPointSIP:
			if conf.SIP != nil {
				a.logger.Debug("Ignoring extra sip entry point", "conferenceId", cd.ConferenceId, "uri", ep.Uri)
				continue
			}
			e := decodeEntryPoint(ep)
			conf.SIP = &e
		case entryPointPhone:
			if ep.Uri == "" {
				continue
			}
			conf.Phone = append(conf.Phone, decodeEntryPoint(ep))
		}
	}

	a.logger.Debug("Mapped conference data",
		"conferenceId", conf.ConferenceID,
		"service", conf.ID,
		"video", conf.Video != nil,
		"sip", conf.SIP != nil,
		"phones", len(conf.Phone))
	return conf
}

// findConferenceLink scans, in order, the hangout link, description, location, source url,
// attachments and gadget link. The first recognised meeting link wins.
func (a *Adapter) findConferenceLink(ev *calendar.Event) *models.Conference {
	fields := []string{ev.HangoutLink, ev.Description, ev.Location}
	if ev.Source != nil {
		fields = append(fields, ev.Source.Url)
	}
	for _, att := range ev.Attachments {
		if att != nil {
			fields = append(fields, att.FileUrl)
		}
	}
	if ev.Gadget != nil {
		fields = append(fields, ev.Gadget.Link)
	}

	for _, text := range fields {
		for _, u := range meeting.ExtractURLs(text) {
			s, ok := a.detector.Detect(u)
			if !ok {
				continue
			}
			return &models.Conference{
				ID:   s.ID,
				Name: s.Name,
				Video: &models.EntryPoint{
					JoinURL: models.JoinURL{Value: s.JoinURL, Label: shortenJoinURL(s.JoinURL)},
				},
				Phone: []models.EntryPoint{},
			}
		}
	}
	return nil
}

func decodeEntryPoint(ep *calendar.EntryPoint) models.EntryPoint {
	e := models.EntryPoint{
		JoinURL:    models.JoinURL{Value: ep.Uri, Label: ep.Label},
		RegionCode: ep.RegionCode,
	}
	if e.JoinURL.Label == "" {
		e.JoinURL.Label = shortenJoinURL(ep.Uri)
	}
	for _, alias := range codeAliases {
		v := *alias.current(ep)
		if v == "" && alias.readLegacy {
			v = *alias.legacy(ep)
		}
		*alias.domain(&e) = v
	}
	if ep.AccessCode != "" && ep.AccessCode != e.MeetingCode {
		e.AccessCode = ep.AccessCode
	}
	if e.Password == "" {
		e.Password = ep.Passcode
	}
	return e
}

func encodeEntryPoint(kind string, in models.EntryPoint) *calendar.EntryPoint {
	ep := &calendar.EntryPoint{
		EntryPointType: kind,
		Uri:            in.JoinURL.Value,
		Label:          in.JoinURL.Label,
		RegionCode:     in.RegionCode,
	}
	for _, alias := range codeAliases {
		if v := *alias.domain(&in); v != "" {
			*alias.current(ep) = v
			*alias.legacy(ep) = v
		}
	}
	if in.AccessCode != "" {
		ep.AccessCode = in.AccessCode
	}
	return ep
}

// EncodeConference converts a domain ConferenceInput to Google conference data.
// Entry points are ordered video, sip, then one per phone number.
func EncodeConference(in models.ConferenceInput) *calendar.ConferenceData {
	name := in.Name
	if name == "" {
		name = defaultSolutionName
	}

	cd := &calendar.ConferenceData{
		ConferenceId: in.ConferenceID,
		ConferenceSolution: &calendar.ConferenceSolution{
			Name: name,
			Key:  &calendar.ConferenceSolutionKey{Type: solutionType(in.Name)},
		},
	}
	if in.Video != nil {
		cd.EntryPoints = append(cd.EntryPoints, encodeEntryPoint(entryPointVideo, *in.Video))
	}
	if in.SIP != nil {
		cd.EntryPoints = append(cd.EntryPoints, encodeEntryPoint(entryPointSIP, *in.SIP))
	}
	for _, p := range in.Phone {
		p.JoinURL.Value = telURI(p.JoinURL.Value)
		cd.EntryPoints = append(cd.EntryPoints, encodeEntryPoint(entryPointPhone, p))
	}
	return cd
}

func solutionType(name string) string {
	if name == "" || strings.Contains(strings.ToLower(name), "google") {
		return solutionHangoutsMeet
	}
	return solutionAddOn
}

func telURI(number string) string {
	if strings.HasPrefix(number, "tel:") {
		return number
	}
	return "tel:" + number
}

// shortenJoinURL derives a display label for a join URL: host and path for web links,
// the bare number or address for tel: and sip: URIs. Unparseable input is returned as is.
func shortenJoinURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Opaque != "" {
		return u.Opaque
	}
	if u.Host == "" {
		return raw
	}
	return u.Host + strings.TrimSuffix(u.Path, "/")
}
