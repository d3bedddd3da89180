package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"

	"calbridge/internal/config"
	"calbridge/internal/google"
	"calbridge/internal/meeting"
)

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authenticate with a Google account to get an API token.",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.LogLevel)
			logger.Info("Starting Google authentication flow.")

			oauthConfig, err := google.GetOAuthConfigForAuthFlow(cfg.GoogleClientID, cfg.GoogleClientSecret)
			if err != nil {
				return fmt.Errorf("failed to get google oauth config: %w", err)
			}

			authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
			fmt.Printf("Go to the following link in your browser then type the "+
				"authorization code: \n%v\n", authURL)

			fmt.Print("Enter Authorization Code: ")
			reader := bufio.NewReader(os.Stdin)
			authCode, _ := reader.ReadString('\n')
			authCode = strings.TrimSpace(authCode)

			token, err := google.TokenFromWeb(c.Context, oauthConfig, authCode)
			if err != nil {
				return fmt.Errorf("unable to retrieve token from web: %w", err)
			}

			fmt.Print("Enter a name for this account (e.g., 'personal', 'work'): ")
			accountName, _ := reader.ReadString('\n')
			accountName = strings.TrimSpace(accountName)
			tokenFile := google.TokenPath(cfg.TokenDir, accountName)

			if err := google.SaveToken(tokenFile, token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			logger.Info("Successfully authenticated and saved token.", "file", tokenFile)
			return nil
		},
	}
}

func calendarsCommand() *cli.Command {
	return &cli.Command{
		Name:  "calendars",
		Usage: "List the calendars of every authenticated Google account.",
		Action: func(c *cli.Context) error {
			_, clients, err := googleClients(c.Context)
			if err != nil {
				return err
			}

			for _, client := range clients {
				cals, err := client.ListCalendars(c.Context)
				if err != nil {
					return fmt.Errorf("account %s: %w", client.AccountID(), err)
				}
				if err := printJSON(cals); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func tasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "List the tasks of a Google task list for every authenticated account.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "list", Usage: "Task list id. Defaults to GOOGLE_TASKLIST_ID."},
		},
		Action: func(c *cli.Context) error {
			cfg, clients, err := googleClients(c.Context)
			if err != nil {
				return err
			}

			listID := c.String("list")
			if listID == "" {
				listID = cfg.GoogleTaskListID
			}

			for _, client := range clients {
				tasks, err := client.ListTasks(c.Context, listID)
				if err != nil {
					return fmt.Errorf("account %s: %w", client.AccountID(), err)
				}
				if err := printJSON(tasks); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// googleClients loads a client for every account with a saved token.
func googleClients(ctx context.Context) (*config.Config, []*google.CalendarClient, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := setupLogger(cfg.LogLevel)

	accounts, err := google.GetTokenAccounts(cfg.TokenDir)
	if err != nil {
		return nil, nil, fmt.Errorf("could not find any google accounts, did you run auth command? %w", err)
	}
	if len(accounts) == 0 {
		return nil, nil, fmt.Errorf("no google accounts found. Run the 'auth' command first")
	}

	adapter := newAdapter(logger)
	var clients []*google.CalendarClient
	for _, acc := range accounts {
		client, err := google.NewClient(ctx, logger, adapter, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.TokenDir, acc)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create google client for account %s: %w", acc, err)
		}
		clients = append(clients, client)
	}
	logger.Info("Initialized Google clients for all accounts.", "count", len(clients))
	return cfg, clients, nil
}

func newAdapter(logger *slog.Logger) *google.Adapter {
	return google.NewAdapter(logger, meeting.NewDetector())
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
