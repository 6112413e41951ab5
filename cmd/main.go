package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hughchaozhang/iss-tracker/internal/config"
	"github.com/hughchaozhang/iss-tracker/internal/geocode"
	"github.com/hughchaozhang/iss-tracker/internal/models"
	"github.com/hughchaozhang/iss-tracker/internal/n2yo"
	"github.com/hughchaozhang/iss-tracker/internal/passes"
	"github.com/hughchaozhang/iss-tracker/internal/timezone"
	"github.com/hughchaozhang/iss-tracker/internal/tracker"
)

// Command iss-tracker reports the ISS's current position and upcoming
// visible passes for a location.
//
// The tool:
//   - Prompts for a city/state/country (Enter uses Los Angeles)
//   - Geocodes the input via Nominatim, falling back to the default
//   - Resolves the local timezone offline from the coordinates
//   - Queries the N2YO API for position and visual pass predictions
//   - Prints each pass as a local-time viewing guide
//
// Usage:
//
//	iss-tracker [flags]
//
// The flags are:
//
//	-config string
//	      path to config file (default "config.yaml")
//
// The N2YO_API_KEY environment variable is required; without it the
// program prints an error and does nothing else.
func main() {
	// Parse command line flags
	cfg := parseFlags()

	// Load configuration
	appConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger with a per-run correlation id
	logger := newLogger(appConfig.Logging).WithField("run_id", uuid.NewString())

	// The credential gate: no key means no prompts and no network calls.
	if appConfig.N2YO.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: N2YO API key not found. Please set the N2YO_API_KEY environment variable.")
		os.Exit(1)
	}

	satellite, err := n2yo.NewClient(n2yo.Config{
		BaseURL:              appConfig.N2YO.BaseURL,
		APIKey:               appConfig.N2YO.APIKey,
		SatelliteID:          appConfig.Tracker.SatelliteID,
		LookaheadDays:        appConfig.Tracker.LookaheadDays,
		MinVisibilitySeconds: appConfig.Tracker.MinVisibilitySeconds,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	defaultLoc := models.Location{
		Latitude:    appConfig.Tracker.DefaultLocation.Latitude,
		Longitude:   appConfig.Tracker.DefaultLocation.Longitude,
		DisplayName: appConfig.Tracker.DefaultLocation.Name,
	}

	locations := geocode.NewResolver(
		appConfig.Geocoder.BaseURL,
		appConfig.Geocoder.UserAgent,
		time.Duration(appConfig.Geocoder.TimeoutSeconds)*time.Second,
		defaultLoc,
		logger,
	)
	timezones := timezone.NewResolver(appConfig.Tracker.FallbackTimezone, logger)
	formatter := passes.NewFormatter(logger)

	query := promptLocation(os.Stdin, os.Stdout)

	trk := tracker.New(locations, timezones, satellite, formatter, logger, os.Stdout)
	if err := trk.Run(context.Background(), query); err != nil {
		logger.WithError(err).Error("Tracking run failed")
	}
}

type cliConfig struct {
	ConfigPath string
}

func parseFlags() *cliConfig {
	cfg := &cliConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "config.yaml", "path to config file")

	flag.Parse()

	return cfg
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// promptLocation reads the city/state/country prompts and joins them into
// a geocoding query. An empty city means "use the default location" and
// skips the remaining prompts.
func promptLocation(in io.Reader, out io.Writer) string {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "\nEnter location details (press Enter for Los Angeles):")

	city := promptLine(scanner, out, "City: ")
	if city == "" {
		return ""
	}

	state := promptLine(scanner, out, "State (optional, press Enter to skip): ")
	country := promptLine(scanner, out, "Country (optional, press Enter for USA): ")
	if country == "" {
		country = "USA"
	}

	return geocode.BuildQuery(city, state, country)
}

func promptLine(scanner *bufio.Scanner, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
