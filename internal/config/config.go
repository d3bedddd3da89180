// Package config reads calbridge settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the commands read from the environment.
type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCalendarIDs  []string
	GoogleTaskListID   string

	ICloudEndpoint     string
	ICloudUsername     string
	ICloudPassword     string
	ICloudCalendarName string

	PrimaryTimeZone *time.Location
	LogLevel        string
	StateFile       string
	SyncDays        int
	TokenDir        string
}

// LoadDotEnv loads a .env file from the working directory if there is one.
func LoadDotEnv(files ...string) {
	// A missing .env file is not an error.
	_ = godotenv.Load(files...)
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCalendarIDs:  splitList(os.Getenv("GOOGLE_CALENDAR_IDS")),
		GoogleTaskListID:   getEnv("GOOGLE_TASKLIST_ID", "@default"),
		ICloudEndpoint:     getEnv("ICLOUD_CALDAV_URL", "https://caldav.icloud.com/"),
		ICloudUsername:     os.Getenv("ICLOUD_USERNAME"),
		ICloudPassword:     os.Getenv("ICLOUD_APP_SPECIFIC_PASSWORD"),
		ICloudCalendarName: os.Getenv("ICLOUD_CALENDAR_NAME"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StateFile:          getEnv("SYNC_STATE_FILE", "sync-state.json"),
		TokenDir:           getEnv("TOKEN_DIR", "."),
	}

	tzStr := getEnv("PRIMARY_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzStr)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", tzStr, err)
	}
	cfg.PrimaryTimeZone = loc

	days, err := strconv.Atoi(getEnv("SYNC_DAYS", "7"))
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("invalid SYNC_DAYS %q: must be a positive integer", os.Getenv("SYNC_DAYS"))
	}
	cfg.SyncDays = days

	return cfg, nil
}

// Require returns an error naming every listed environment variable that is unset.
func (c *Config) Require(keys ...string) error {
	values := map[string]bool{
		"GOOGLE_CLIENT_ID":             c.GoogleClientID != "",
		"GOOGLE_CLIENT_SECRET":         c.GoogleClientSecret != "",
		"GOOGLE_CALENDAR_IDS":          len(c.GoogleCalendarIDs) > 0,
		"ICLOUD_USERNAME":              c.ICloudUsername != "",
		"ICLOUD_APP_SPECIFIC_PASSWORD": c.ICloudPassword != "",
		"ICLOUD_CALENDAR_NAME":         c.ICloudCalendarName != "",
	}

	var missing []string
	for _, k := range keys {
		if !values[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
