// Package meeting recognises join links of known conferencing services.
package meeting

import (
	"regexp"
	"strings"
)

// Service identifies the conferencing service a link belongs to.
type Service struct {
	ID      string
	Name    string
	JoinURL string
}

type pattern struct {
	id   string
	name string
	re   *regexp.Regexp
}

// Patterns are matched against the whole URL, in order. The first capture group, when present,
// is the canonical join URL.
var patterns = []pattern{
	{"google-meet", "Google Meet", regexp.MustCompile(`^(https?://meet\.google\.com/[a-z]{3}-[a-z]{4}-[a-z]{3})`)},
	{"google-meet", "Google Meet", regexp.MustCompile(`^(https?://meet\.google\.com/lookup/[\w-]+)`)},
	{"google-meet", "Google Meet", regexp.MustCompile(`^(https?://plus\.google\.com/hangouts/_/[\w./-]+)`)},
	{"zoom", "Zoom", regexp.MustCompile(`^(https?://(?:[\w-]+\.)?zoom(?:gov)?\.us/(?:j|my|w|s)/[\w.-]+(?:\?pwd=[\w.-]+)?)`)},
	{"microsoft-teams", "Microsoft Teams", regexp.MustCompile(`^(https?://teams\.(?:microsoft|live)\.com/(?:l/meetup-join|meet)/\S+)`)},
	{"webex", "Webex", regexp.MustCompile(`^(https?://[\w-]+\.webex\.com/(?:[\w-]+/)?(?:j\.php\?MTID=|meet/|join/)\S+)`)},
	{"gotomeeting", "GoTo Meeting", regexp.MustCompile(`^(https?://(?:global\.gotomeeting\.com/join|meet\.goto\.com|app\.gotomeeting\.com/\?meetingId=)/?[\w-]+)`)},
	{"jitsi", "Jitsi Meet", regexp.MustCompile(`^(https?://meet\.jit\.si/[\w-]+)`)},
	{"whereby", "Whereby", regexp.MustCompile(`^(https?://whereby\.com/[\w-]+)`)},
	{"skype", "Skype", regexp.MustCompile(`^(https?://join\.skype\.com/[\w-]+)`)},
	{"bluejeans", "BlueJeans", regexp.MustCompile(`^(https?://(?:[\w-]+\.)?bluejeans\.com/\d+(?:/\d+)?)`)},
	{"chime", "Amazon Chime", regexp.MustCompile(`^(https?://(?:app\.)?chime\.aws/(?:meetings/)?\d{10})`)},
	{"slack", "Slack Huddle", regexp.MustCompile(`^(https?://app\.slack\.com/huddle/[\w/-]+)`)},
	{"discord", "Discord", regexp.MustCompile(`^(https?://(?:www\.)?discord\.(?:gg|com/invite)/[\w-]+)`)},
	{"ringcentral", "RingCentral", regexp.MustCompile(`^(https?://(?:meetings|v)\.ringcentral\.com/(?:join/)?\d+)`)},
}

// Detector matches URLs against the known conferencing services.
type Detector struct{}

// NewDetector returns a Detector over the built-in service table.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect reports which conferencing service rawURL belongs to. The returned JoinURL is
// the canonical form of the link with tracking suffixes dropped.
func (d *Detector) Detect(rawURL string) (Service, bool) {
	u := lowerSchemeAndHost(strings.TrimSpace(rawURL))
	if u == "" {
		return Service{}, false
	}
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(u)
		if m == nil {
			continue
		}
		join := m[0]
		if len(m) > 1 && m[1] != "" {
			join = m[1]
		}
		return Service{ID: p.id, Name: p.name, JoinURL: join}, true
	}
	return Service{}, false
}

// lowerSchemeAndHost lowercases everything before the path, query or fragment.
// Paths keep their case since meeting ids can be case-sensitive.
func lowerSchemeAndHost(u string) string {
	i := strings.Index(u, "://")
	if i < 0 {
		return u
	}
	end := len(u)
	if j := strings.IndexAny(u[i+3:], "/?#"); j >= 0 {
		end = i + 3 + j
	}
	return strings.ToLower(u[:end]) + u[end:]
}
