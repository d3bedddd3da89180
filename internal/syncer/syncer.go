package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"calbridge/internal/icloud"
	"calbridge/internal/models"
)

// SyncState keeps track of which events have been synced.
// The key is the Google Event ID, and the value is the UID of the event in iCloud.
type SyncState map[string]string

// EventSource lists upcoming domain events of a calendar.
type EventSource interface {
	AccountID() string
	GetUpcomingEvents(ctx context.Context, calendarID string, days int) ([]*models.CalendarEvent, error)
}

// EventSink stores a domain event.
type EventSink interface {
	SyncEvent(ctx context.Context, event *models.CalendarEvent) error
}

// Options configures a Syncer.
type Options struct {
	CalendarIDs     []string
	Days            int
	StatePath       string
	DryRun          bool
	PrimaryTimeZone *time.Location
}

// Syncer orchestrates the synchronization from Google Calendar to iCloud.
type Syncer struct {
	logger  *slog.Logger
	sources []EventSource
	sink    EventSink
	state   SyncState
	opts    Options
}

// NewSyncer creates a new Syncer.
func NewSyncer(logger *slog.Logger, sources []EventSource, sink EventSink, opts Options) (*Syncer, error) {
	if opts.PrimaryTimeZone == nil {
		opts.PrimaryTimeZone = time.UTC
	}
	if opts.Days <= 0 {
		opts.Days = 7
	}

	state, err := loadState(opts.StatePath)
	if err != nil {
		// If the file doesn't exist, we can start with an empty state.
		if os.IsNotExist(err) {
			logger.Info("No sync state file found, starting fresh.", "file", opts.StatePath)
			state = make(SyncState)
		} else {
			return nil, fmt.Errorf("failed to load sync state: %w", err)
		}
	}

	return &Syncer{
		logger:  logger,
		sources: sources,
		sink:    sink,
		state:   state,
		opts:    opts,
	}, nil
}

// Sync performs a full synchronization cycle.
func (s *Syncer) Sync(ctx context.Context) error {
	s.logger.Info("Starting sync cycle.")

	events := s.fetchAllEvents(ctx)
	s.logger.Info("Fetched all Google events.", "count", len(events))

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.syncEvent(ctx, event); err != nil {
			s.logger.Error("Failed to sync event", "title", event.Title, "error", err)
			// Continue with the next event even if one fails.
		}
	}

	if !s.opts.DryRun {
		if err := s.saveState(); err != nil {
			s.logger.Error("Failed to save sync state", "error", err)
		}
	}

	s.logger.Info("Sync cycle finished.")
	return nil
}

// State returns a copy of the current sync state.
func (s *Syncer) State() SyncState {
	out := make(SyncState, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}
	return out
}

func (s *Syncer) fetchAllEvents(ctx context.Context) []*models.CalendarEvent {
	var allEvents []*models.CalendarEvent
	for _, source := range s.sources {
		for _, calID := range s.opts.CalendarIDs {
			events, err := source.GetUpcomingEvents(ctx, calID, s.opts.Days)
			if err != nil {
				s.logger.Error("Could not fetch events for a google calendar", "account", source.AccountID(), "calendarID", calID, "error", err)
				continue
			}
			allEvents = append(allEvents, events...)
		}
	}
	return allEvents
}

func (s *Syncer) syncEvent(ctx context.Context, event *models.CalendarEvent) error {
	if event.Status == "cancelled" {
		s.logger.Debug("Event cancelled, skipping.", "title", event.Title, "id", event.ID)
		return nil
	}

	// For now, we don't handle updates.
	if _, exists := s.state[event.ID]; exists {
		s.logger.Debug("Event already synced, skipping.", "title", event.Title, "id", event.ID)
		return nil
	}

	s.logger.Info("New event found, syncing to iCloud.", "title", event.Title)

	// Events are written with a copy so the caller's value is left untouched.
	out := *event
	if out.UID == "" {
		s.logger.Warn("Google event has no UID, generating a new one.", "title", event.Title)
		out.UID = icloud.GenerateUID()
	}
	if !out.AllDay {
		out.Start = inZone(out.Start, s.opts.PrimaryTimeZone)
		out.End = inZone(out.End, s.opts.PrimaryTimeZone)
	}

	if s.opts.DryRun {
		s.logger.Info("[DRY RUN] Would create new event in iCloud", "title", out.Title, "start", out.Start.DateTime)
		return nil
	}

	if err := s.sink.SyncEvent(ctx, &out); err != nil {
		return fmt.Errorf("failed to sync event to icloud: %w", err)
	}

	s.state[event.ID] = out.UID
	return nil
}

func inZone(t models.EventTime, loc *time.Location) models.EventTime {
	if t.DateTime == nil {
		return t
	}
	local := t.DateTime.In(loc)
	t.DateTime = &local
	return t
}

func loadState(path string) (SyncState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var state SyncState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state == nil {
		state = make(SyncState)
	}
	return state, nil
}

func (s *Syncer) saveState() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sync state: %w", err)
	}
	return os.WriteFile(s.opts.StatePath, data, 0o644)
}
