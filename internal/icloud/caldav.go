package icloud

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"slices"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"

	"calbridge/internal/models"
)

// DefaultEndpoint is the iCloud CalDAV root.
const DefaultEndpoint = "https://caldav.icloud.com/"

// basicAuthTransport adds Basic Auth and a user agent to every request.
type basicAuthTransport struct {
	username string
	password string
	next     http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.username, t.password)
	req.Header.Set("User-Agent", "calbridge/1.0")
	return t.next.RoundTrip(req)
}

// CalDAVClient writes domain events into one calendar collection of a CalDAV server.
type CalDAVClient struct {
	caldav       *caldav.Client
	webdav       *webdav.Client
	logger       *slog.Logger
	calendarPath string
}

// NewClient connects to endpoint (DefaultEndpoint when empty) and resolves the calendar
// named calendarName through principal and home-set discovery.
func NewClient(ctx context.Context, logger *slog.Logger, endpoint, username, password, calendarName string) (*CalDAVClient, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpClient := &http.Client{Transport: &basicAuthTransport{
		username: username,
		password: password,
		next:     http.DefaultTransport,
	}}

	caldavClient, err := caldav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create caldav client: %w", err)
	}
	webdavClient, err := webdav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create webdav client: %w", err)
	}

	c := &CalDAVClient{
		caldav: caldavClient,
		webdav: webdavClient,
		logger: logger,
	}

	logger.Info("Finding CalDAV calendar", "calendarName", calendarName, "endpoint", endpoint)
	calendarPath, err := c.findCalendar(ctx, calendarName)
	if err != nil {
		return nil, fmt.Errorf("could not find calendar '%s': %w", calendarName, err)
	}
	c.calendarPath = calendarPath
	logger.Info("Successfully found CalDAV calendar", "path", calendarPath)

	return c, nil
}

// SyncEvent creates or replaces the event in the calendar. The event must carry a UID.
func (c *CalDAVClient) SyncEvent(ctx context.Context, event *models.CalendarEvent) error {
	c.logger.Debug("Syncing event to CalDAV", "eventTitle", event.Title, "uid", event.UID)

	cal, err := NewCalendar(event, time.Now().UTC())
	if err != nil {
		return err
	}

	writer, err := c.webdav.Create(ctx, eventPath(c.calendarPath, event.UID))
	if err != nil {
		return fmt.Errorf("failed to create event on CalDAV server: %w", err)
	}
	if err := ical.NewEncoder(writer).Encode(cal); err != nil {
		writer.Close()
		return fmt.Errorf("failed to encode event to iCal format: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to upload event: %w", err)
	}

	c.logger.Info("Successfully synced event", "eventTitle", event.Title, "uid", event.UID)
	return nil
}

// eventPath names the resource of an event inside a calendar collection.
func eventPath(calendarPath, uid string) string {
	return path.Join(calendarPath, url.PathEscape(uid)+".ics")
}

func (c *CalDAVClient) findCalendar(ctx context.Context, name string) (string, error) {
	principalPath, err := c.caldav.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to find principal path: %w", err)
	}

	homeSetPath, err := c.caldav.FindCalendarHomeSet(ctx, principalPath)
	if err != nil {
		return "", fmt.Errorf("failed to find calendar home set: %w", err)
	}

	calendars, err := c.caldav.FindCalendars(ctx, homeSetPath)
	if err != nil {
		return "", fmt.Errorf("failed to find calendars: %w", err)
	}

	return pickCalendar(calendars, name)
}

// pickCalendar returns the path of the calendar called name that can hold events.
func pickCalendar(calendars []caldav.Calendar, name string) (string, error) {
	for _, cal := range calendars {
		if cal.Name != name {
			continue
		}
		if len(cal.SupportedComponentSet) > 0 && !slices.Contains(cal.SupportedComponentSet, ical.CompEvent) {
			return "", fmt.Errorf("calendar '%s' does not accept events", name)
		}
		return cal.Path, nil
	}
	return "", fmt.Errorf("no calendar found with name '%s'", name)
}

// GenerateUID creates a new unique identifier for an event.
func GenerateUID() string {
	return uuid.New().String()
}
