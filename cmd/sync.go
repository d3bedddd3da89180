package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"calbridge/internal/icloud"
	"calbridge/internal/syncer"
)

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Run the calendar synchronization process.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dry-run", Usage: "Log what would be synced without making changes."},
			&cli.IntFlag{Name: "watch", Value: 300, Usage: "Run sync every N seconds. Without it a single cycle runs."},
		},
		Action: func(c *cli.Context) error {
			cfg, clients, err := googleClients(c.Context)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.LogLevel)

			if err := cfg.Require("GOOGLE_CALENDAR_IDS", "ICLOUD_USERNAME", "ICLOUD_APP_SPECIFIC_PASSWORD", "ICLOUD_CALENDAR_NAME"); err != nil {
				return err
			}
			if c.Bool("dry-run") {
				logger.Info("Performing a dry run. No changes will be made.")
			}

			iClient, err := icloud.NewClient(c.Context, logger, cfg.ICloudEndpoint, cfg.ICloudUsername, cfg.ICloudPassword, cfg.ICloudCalendarName)
			if err != nil {
				return fmt.Errorf("failed to create icloud client: %w", err)
			}

			sources := make([]syncer.EventSource, 0, len(clients))
			for _, client := range clients {
				sources = append(sources, client)
			}

			s, err := syncer.NewSyncer(logger, sources, iClient, syncer.Options{
				CalendarIDs:     cfg.GoogleCalendarIDs,
				Days:            cfg.SyncDays,
				StatePath:       cfg.StateFile,
				DryRun:          c.Bool("dry-run"),
				PrimaryTimeZone: cfg.PrimaryTimeZone,
			})
			if err != nil {
				return fmt.Errorf("failed to create syncer: %w", err)
			}

			// --watch keeps running; without it a single cycle runs.
			if c.IsSet("watch") {
				interval := time.Duration(c.Int("watch")) * time.Second
				logger.Info("Starting watcher.", "interval", interval)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					if err := s.Sync(c.Context); err != nil {
						logger.Error("Sync cycle failed", "error", err)
					}
					select {
					case <-c.Context.Done():
						return nil
					case <-ticker.C:
					}
				}
			}

			logger.Info("Running a single sync cycle.")
			if err := s.Sync(c.Context); err != nil {
				return fmt.Errorf("single sync cycle failed: %w", err)
			}
			return nil
		},
	}
}
