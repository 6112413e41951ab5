package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hughchaozhang/iss-tracker/internal/models"
)

var (
	ErrRequest = errors.New("error making geocoding request")
	ErrStatus  = errors.New("error status from geocoding service")
	ErrNoMatch = errors.New("no match for location")
)

// Resolver turns free-text location input into coordinates using the
// Nominatim search API. Lookup failures of any kind fall back to the
// configured default location, so Resolve never fails its caller.
type Resolver struct {
	baseURL    string
	userAgent  string
	defaultLoc models.Location
	httpClient *http.Client
	logger     logrus.FieldLogger
}

func NewResolver(baseURL, userAgent string, timeout time.Duration, defaultLoc models.Location, logger logrus.FieldLogger) *Resolver {
	return &Resolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		defaultLoc: defaultLoc,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Resolve maps a free-text query to a Location. An empty query skips the
// lookup entirely and returns the default location. The provider's first
// match wins; ambiguity handling is left to its ranking.
func (r *Resolver) Resolve(ctx context.Context, query string) models.Location {
	if strings.TrimSpace(query) == "" {
		r.logger.WithField("location", r.defaultLoc.DisplayName).Info("No location given, using default")
		return r.defaultLoc
	}

	loc, err := r.lookup(ctx, query)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"query":    query,
			"fallback": r.defaultLoc.DisplayName,
		}).WithError(err).Warn("Geocoding failed, using default location")
		return r.defaultLoc
	}

	r.logger.WithField("address", loc.DisplayName).Info("Found location")
	return loc
}

// nominatimPlace is the subset of a Nominatim search result we use.
// Coordinates are returned as strings by the API.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (r *Resolver) lookup(ctx context.Context, query string) (models.Location, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("%w: got %d", ErrStatus, resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return models.Location{}, fmt.Errorf("failed to decode geocoding response: %v", err)
	}

	if len(places) == 0 {
		return models.Location{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: bad latitude %q", ErrNoMatch, places[0].Lat)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: bad longitude %q", ErrNoMatch, places[0].Lon)
	}

	return models.Location{
		Latitude:    lat,
		Longitude:   lng,
		DisplayName: places[0].DisplayName,
	}, nil
}

// BuildQuery joins the non-empty address parts with ", " for a Nominatim
// free-text search.
func BuildQuery(city, state, country string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{city, state, country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
