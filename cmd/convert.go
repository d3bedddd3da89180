package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/tasks/v1"

	"calbridge/internal/google"
	"calbridge/internal/models"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Read a Google payload as JSON and print the provider-neutral object.",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Value: "event", Usage: "Payload kind: event, calendar or task."},
			&cli.StringFlag{Name: "account", Value: "default", Usage: "Account id stamped on the result."},
			&cli.StringFlag{Name: "calendar", Usage: "Calendar-list entry JSON file the event belongs to."},
			&cli.StringFlag{Name: "list", Value: "@default", Usage: "Task list id for tasks."},
		},
		Action: func(c *cli.Context) error {
			logger := setupLogger(os.Getenv("LOG_LEVEL"))
			adapter := newAdapter(logger)
			account := c.String("account")

			data, err := readInput(c.Args().First())
			if err != nil {
				return err
			}

			switch c.String("kind") {
			case "event":
				cal := models.Calendar{ID: "primary", ProviderID: models.ProviderGoogle, AccountID: account}
				if path := c.String("calendar"); path != "" {
					var entry calendar.CalendarListEntry
					if err := decodeFile(path, &entry); err != nil {
						return err
					}
					if cal, err = google.MapCalendar(account, &entry); err != nil {
						return err
					}
				}
				var ev calendar.Event
				if err := json.Unmarshal(data, &ev); err != nil {
					return fmt.Errorf("failed to decode event: %w", err)
				}
				out, err := adapter.MapEvent(cal, account, &ev)
				if err != nil {
					return err
				}
				return printJSON(out)
			case "calendar":
				var entry calendar.CalendarListEntry
				if err := json.Unmarshal(data, &entry); err != nil {
					return fmt.Errorf("failed to decode calendar: %w", err)
				}
				out, err := google.MapCalendar(account, &entry)
				if err != nil {
					return err
				}
				return printJSON(out)
			case "task":
				var t tasks.Task
				if err := json.Unmarshal(data, &t); err != nil {
					return fmt.Errorf("failed to decode task: %w", err)
				}
				out, err := google.MapTask(account, c.String("list"), &t)
				if err != nil {
					return err
				}
				return printJSON(out)
			default:
				return fmt.Errorf("unknown kind %q", c.String("kind"))
			}
		},
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Read a create/update input as JSON and print the Google request body.",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Value: "event", Usage: "Input kind: event or task."},
		},
		Action: func(c *cli.Context) error {
			adapter := newAdapter(setupLogger(os.Getenv("LOG_LEVEL")))

			data, err := readInput(c.Args().First())
			if err != nil {
				return err
			}

			switch c.String("kind") {
			case "event":
				var in models.EventInput
				if err := json.Unmarshal(data, &in); err != nil {
					return fmt.Errorf("failed to decode event input: %w", err)
				}
				req, err := adapter.EncodeEvent(in)
				if err != nil {
					return err
				}
				if req.ConferenceDataVersion > 0 {
					fmt.Fprintf(os.Stderr, "conferenceDataVersion=%d\n", req.ConferenceDataVersion)
				}
				return printJSON(req.Event)
			case "task":
				var in models.TaskInput
				if err := json.Unmarshal(data, &in); err != nil {
					return fmt.Errorf("failed to decode task input: %w", err)
				}
				body, err := adapter.EncodeTask(in)
				if err != nil {
					return err
				}
				return printJSON(body)
			default:
				return fmt.Errorf("unknown kind %q", c.String("kind"))
			}
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
