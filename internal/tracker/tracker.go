// Package tracker sequences the ISS tracking pipeline: location, timezone,
// current position, upcoming passes. Each external result feeds the next;
// nothing is cached between runs.
package tracker

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hughchaozhang/iss-tracker/internal/models"
)

// LocationResolver maps free-text input to coordinates, falling back to a
// default location rather than failing.
type LocationResolver interface {
	Resolve(ctx context.Context, query string) models.Location
}

// TimezoneResolver maps coordinates to an IANA timezone identifier.
type TimezoneResolver interface {
	Resolve(lat, lng float64) string
}

// SatelliteAPI provides the satellite's current position and its upcoming
// visible passes for an observer.
type SatelliteAPI interface {
	Position(ctx context.Context) (*models.SatellitePosition, error)
	Passes(ctx context.Context, lat, lng, altKm float64) ([]models.Pass, error)
}

// PassFormatter renders one pass for a timezone.
type PassFormatter interface {
	Format(p models.Pass, timezone string) string
}

// Tracker runs the pipeline and writes prose output to out. API failures
// degrade to "unavailable" messaging; they never abort the run.
type Tracker struct {
	locations LocationResolver
	timezones TimezoneResolver
	satellite SatelliteAPI
	formatter PassFormatter
	logger    logrus.FieldLogger
	out       io.Writer
}

func New(
	locations LocationResolver,
	timezones TimezoneResolver,
	satellite SatelliteAPI,
	formatter PassFormatter,
	logger logrus.FieldLogger,
	out io.Writer,
) *Tracker {
	return &Tracker{
		locations: locations,
		timezones: timezones,
		satellite: satellite,
		formatter: formatter,
		logger:    logger,
		out:       out,
	}
}

// Run executes one tracking pass for the given location query. The query
// may be empty, in which case the default location is used.
func (t *Tracker) Run(ctx context.Context, query string) error {
	loc := t.locations.Resolve(ctx, query)
	zone := t.timezones.Resolve(loc.Latitude, loc.Longitude)

	fmt.Fprintf(t.out, "\nLocation: %s\n", loc.DisplayName)
	fmt.Fprintf(t.out, "Coordinates: %.4f, %.4f\n", loc.Latitude, loc.Longitude)
	fmt.Fprintf(t.out, "Timezone: %s\n", zone)

	fmt.Fprintln(t.out, "\nFetching ISS position...")
	pos, err := t.satellite.Position(ctx)
	if err != nil {
		t.logger.WithError(err).Warn("Failed to fetch ISS position")
		fmt.Fprintln(t.out, "Unable to fetch current ISS position")
	} else {
		fmt.Fprintln(t.out, "\nCurrent ISS Position:")
		fmt.Fprintf(t.out, "Latitude: %.4f°\n", pos.Latitude)
		fmt.Fprintf(t.out, "Longitude: %.4f°\n", pos.Longitude)
		fmt.Fprintf(t.out, "Altitude: %.2f km\n", pos.AltitudeKm)
	}

	fmt.Fprintln(t.out, "\nFetching upcoming passes...")
	upcoming, err := t.satellite.Passes(ctx, loc.Latitude, loc.Longitude, 0)
	if err != nil {
		t.logger.WithError(err).Warn("Failed to fetch pass predictions")
		fmt.Fprintln(t.out, "No upcoming visible passes found or error fetching pass data")
		return nil
	}

	if len(upcoming) == 0 {
		fmt.Fprintln(t.out, "No upcoming visible passes found")
		return nil
	}

	fmt.Fprintln(t.out, "\nUpcoming visible passes:")
	for i, p := range upcoming {
		fmt.Fprintf(t.out, "\nPass %d:\n%s\n", i+1, t.formatter.Format(p, zone))
	}

	return nil
}
