// Package passes renders predicted satellite passes as human-readable,
// local-time viewing guides.
package passes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hughchaozhang/iss-tracker/internal/models"
)

const (
	timestampLayout = "2006-01-02 03:04:05 PM MST"
	clockLayout     = "03:04 PM"
)

// Formatter converts raw pass records into display text. It holds no
// per-pass state; Format is a pure function of its inputs.
type Formatter struct {
	logger logrus.FieldLogger
}

func NewFormatter(logger logrus.FieldLogger) *Formatter {
	return &Formatter{logger: logger}
}

// Format renders one pass in the given IANA timezone. When the zone cannot
// be loaded the output degrades to start and end times in UTC only; the
// direction, elevation, duration and viewing-guide lines are omitted.
func (f *Formatter) Format(p models.Pass, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		f.logger.WithField("timezone", timezone).WithError(err).Warn("Timezone error, falling back to UTC")
		start := time.Unix(p.StartUTC, 0).UTC()
		end := time.Unix(p.EndUTC, 0).UTC()
		return fmt.Sprintf("Start: %s\nEnd: %s\n",
			start.Format(timestampLayout),
			end.Format(timestampLayout))
	}

	start := time.Unix(p.StartUTC, 0).In(loc)
	end := time.Unix(p.EndUTC, 0).In(loc)
	startDir := CardinalDirection(p.StartAzimuth)
	endDir := CardinalDirection(p.EndAzimuth)

	var b strings.Builder
	fmt.Fprintf(&b, "Start: %s\n", start.Format(timestampLayout))
	fmt.Fprintf(&b, "Starting direction: %s° (%s)\n", formatDegrees(p.StartAzimuth), startDir)
	fmt.Fprintf(&b, "Maximum Elevation: %s°\n", formatDegrees(p.MaxElevation))
	fmt.Fprintf(&b, "Ending direction: %s° (%s)\n", formatDegrees(p.EndAzimuth), endDir)
	fmt.Fprintf(&b, "End: %s\n", end.Format(timestampLayout))
	fmt.Fprintf(&b, "Duration: %d seconds\n", p.Duration)
	fmt.Fprintf(&b, "Viewing guide: Look %s at %s, the ISS will rise to %s° above horizon and set %s",
		startDir, start.Format(clockLayout), formatDegrees(p.MaxElevation), endDir)
	return b.String()
}

// formatDegrees prints an angle without trailing zeros (77.3 not 77.300000).
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
