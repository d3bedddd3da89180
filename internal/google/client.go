package google

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"

	"calbridge/internal/models"
)

// CalendarClient talks to the Google Calendar and Tasks APIs for one account and returns
// domain objects.
type CalendarClient struct {
	events    *calendar.Service
	tasks     *tasks.Service
	adapter   *Adapter
	logger    *slog.Logger
	accountID string
}

// NewClient creates a client for accountName using its token file in tokenDir.
func NewClient(ctx context.Context, logger *slog.Logger, adapter *Adapter, clientID, clientSecret, tokenDir, accountName string) (*CalendarClient, error) {
	config, err := getOAuthConfig(clientID, clientSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to get OAuth config: %w", err)
	}

	token, err := tokenFromFile(TokenPath(tokenDir, accountName))
	if err != nil {
		return nil, fmt.Errorf("could not load token for account %s: %w. Please run the 'auth' command first", accountName, err)
	}

	return newClient(ctx, logger, adapter, accountName, option.WithHTTPClient(config.Client(ctx, token)))
}

func newClient(ctx context.Context, logger *slog.Logger, adapter *Adapter, accountID string, opts ...option.ClientOption) (*CalendarClient, error) {
	events, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	taskService, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return &CalendarClient{
		events:    events,
		tasks:     taskService,
		adapter:   adapter,
		logger:    logger.With("account", accountID),
		accountID: accountID,
	}, nil
}

// AccountID returns the account the client is authenticated as.
func (c *CalendarClient) AccountID() string {
	return c.accountID
}

// ListCalendars returns every calendar on the account's calendar list.
func (c *CalendarClient) ListCalendars(ctx context.Context) ([]models.Calendar, error) {
	list, err := c.events.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]models.Calendar, 0, len(list.Items))
	for _, item := range list.Items {
		cal, err := MapCalendar(c.accountID, item)
		if err != nil {
			c.logger.Warn("Skipping calendar list entry", "error", err)
			continue
		}
		calendars = append(calendars, cal)
	}
	return calendars, nil
}

// GetCalendar returns a single calendar from the account's calendar list.
func (c *CalendarClient) GetCalendar(ctx context.Context, calendarID string) (models.Calendar, error) {
	entry, err := c.events.CalendarList.Get(calendarID).Context(ctx).Do()
	if err != nil {
		return models.Calendar{}, fmt.Errorf("failed to get calendar %s: %w", calendarID, err)
	}
	return MapCalendar(c.accountID, entry)
}

// GetUpcomingEvents fetches events starting within the given number of days and maps them to domain events.
func (c *CalendarClient) GetUpcomingEvents(ctx context.Context, calendarID string, days int) ([]*models.CalendarEvent, error) {
	c.logger.Debug("Fetching upcoming events", "calendarID", calendarID, "days", days)

	cal, err := c.GetCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tmax := now.Add(time.Duration(days) * 24 * time.Hour).Format(time.RFC3339)
	tmin := now.Format(time.RFC3339)

	events, err := c.events.Events.List(calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(tmin).
		TimeMax(tmax).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	c.logger.Info("Successfully fetched events from Google Calendar", "count", len(events.Items), "calendarID", calendarID)

	var mapped []*models.CalendarEvent
	for _, item := range events.Items {
		ev, err := c.adapter.MapEvent(cal, c.accountID, item)
		if err != nil {
			c.logger.Warn("Skipping event", "calendarID", calendarID, "error", err)
			continue
		}
		mapped = append(mapped, ev)
	}
	return mapped, nil
}

// SaveEvent inserts the event when in has no id and updates it otherwise.
func (c *CalendarClient) SaveEvent(ctx context.Context, cal models.Calendar, in models.EventInput) (*models.CalendarEvent, error) {
	req, err := c.adapter.EncodeEvent(in)
	if err != nil {
		return nil, err
	}

	var saved *calendar.Event
	if in.IsUpdate() {
		call := c.events.Events.Update(cal.ID, in.ID, req.Event).Context(ctx)
		if req.ConferenceDataVersion > 0 {
			call = call.ConferenceDataVersion(req.ConferenceDataVersion)
		}
		saved, err = call.Do()
	} else {
		call := c.events.Events.Insert(cal.ID, req.Event).Context(ctx)
		if req.ConferenceDataVersion > 0 {
			call = call.ConferenceDataVersion(req.ConferenceDataVersion)
		}
		saved, err = call.Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	c.logger.Info("Saved event", "calendarID", cal.ID, "id", saved.Id, "update", in.IsUpdate())
	return c.adapter.MapEvent(cal, c.accountID, saved)
}

// ListTasks returns the tasks of a task list.
func (c *CalendarClient) ListTasks(ctx context.Context, taskListID string) ([]*models.Task, error) {
	list, err := c.tasks.Tasks.List(taskListID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var mapped []*models.Task
	for _, item := range list.Items {
		t, err := MapTask(c.accountID, taskListID, item)
		if err != nil {
			c.logger.Warn("Skipping task", "taskListID", taskListID, "error", err)
			continue
		}
		mapped = append(mapped, t)
	}
	return mapped, nil
}

// SaveTask inserts the task when in has no id and updates it otherwise.
func (c *CalendarClient) SaveTask(ctx context.Context, taskListID string, in models.TaskInput) (*models.Task, error) {
	body, err := c.adapter.EncodeTask(in)
	if err != nil {
		return nil, err
	}

	var saved *tasks.Task
	if in.IsUpdate() {
		saved, err = c.tasks.Tasks.Update(taskListID, in.ID, body).Context(ctx).Do()
	} else {
		saved, err = c.tasks.Tasks.Insert(taskListID, body).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return MapTask(c.accountID, taskListID, saved)
}
