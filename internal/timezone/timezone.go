package timezone

import (
	"github.com/bradfitz/latlong"
	"github.com/sirupsen/logrus"
)

// Resolver maps coordinates to an IANA timezone identifier using an
// embedded world timezone map; no network call is made. A miss (open
// ocean, poles) is silently substituted with the fallback zone.
type Resolver struct {
	fallback string
	logger   logrus.FieldLogger
}

func NewResolver(fallback string, logger logrus.FieldLogger) *Resolver {
	return &Resolver{
		fallback: fallback,
		logger:   logger,
	}
}

// Resolve never fails; it returns the fallback identifier when the
// coordinates do not land in a known zone.
func (r *Resolver) Resolve(lat, lng float64) string {
	zone := latlong.LookupZoneName(lat, lng)
	if zone == "" {
		r.logger.WithFields(logrus.Fields{
			"latitude":  lat,
			"longitude": lng,
			"fallback":  r.fallback,
		}).Info("No timezone for coordinates, using fallback")
		return r.fallback
	}
	return zone
}
