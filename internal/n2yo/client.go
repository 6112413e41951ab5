// Package n2yo wraps the N2YO satellite tracking REST API.
//
// Two endpoints are used:
//   - positions: the satellite's current sub-satellite point
//   - visualpasses: predicted visible passes for an observer
//
// The API key is required at construction time; a client cannot be built
// without one. A one-token-per-second limiter, drained on construction,
// enforces a fixed courtesy delay before each position request.
package n2yo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/hughchaozhang/iss-tracker/internal/models"
)

var (
	ErrNotConfigured     = errors.New("n2yo API key not configured")
	ErrRequest           = errors.New("error making n2yo request")
	ErrStatus            = errors.New("error status from n2yo")
	ErrAPIError          = errors.New("n2yo reported an error")
	ErrMalformedResponse = errors.New("malformed n2yo response")
	ErrNoPositions       = errors.New("no position data returned")
)

// Config holds the client parameters for one satellite.
type Config struct {
	BaseURL              string
	APIKey               string
	SatelliteID          int
	LookaheadDays        int
	MinVisibilitySeconds int
}

// Client is a thin wrapper over the N2YO REST endpoints.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logrus.FieldLogger
}

// NewClient builds a client, failing with ErrNotConfigured when the API
// key is absent so that no method can run without a credential.
func NewClient(cfg Config, logger logrus.FieldLogger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	limiter := rate.NewLimiter(rate.Every(time.Second), 1)
	// Drain the initial token so the first wait pays the full delay.
	limiter.Allow()

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    limiter,
		logger:     logger,
	}, nil
}

type positionEntry struct {
	SatLatitude  float64 `json:"satlatitude"`
	SatLongitude float64 `json:"satlongitude"`
	SatAltitude  float64 `json:"sataltitude"`
}

type positionsResponse struct {
	Error string `json:"error"`
	// Pointer distinguishes a structurally missing field from an empty array.
	Positions *[]positionEntry `json:"positions"`
}

// Position fetches the satellite's current position: one data point for a
// zero-width observer window. All failures map to a nil position with a
// wrapped cause.
func (c *Client) Position(ctx context.Context) (*models.SatellitePosition, error) {
	// Courtesy rate limit toward the remote service.
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}

	endpoint := fmt.Sprintf("%s/positions/%d/0/0/0/1?apiKey=%s",
		c.cfg.BaseURL, c.cfg.SatelliteID, c.cfg.APIKey)

	var payload positionsResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, payload.Error)
	}
	if payload.Positions == nil {
		return nil, fmt.Errorf("%w: positions field not found", ErrMalformedResponse)
	}
	if len(*payload.Positions) == 0 {
		return nil, ErrNoPositions
	}

	first := (*payload.Positions)[0]
	return &models.SatellitePosition{
		Latitude:   first.SatLatitude,
		Longitude:  first.SatLongitude,
		AltitudeKm: first.SatAltitude,
	}, nil
}

type passesResponse struct {
	Error string `json:"error"`
	// Pointer distinguishes a structurally missing field from an empty array.
	Passes *[]models.Pass `json:"passes"`
}

// Passes fetches upcoming visible passes for the observer coordinates.
// An empty passes array is a valid "no passes" result and yields an empty
// slice; a structurally absent passes field is an API contract violation
// and yields an error.
func (c *Client) Passes(ctx context.Context, lat, lng, altKm float64) ([]models.Pass, error) {
	endpoint := fmt.Sprintf("%s/visualpasses/%d/%s/%s/%s/%d/%d?apiKey=%s",
		c.cfg.BaseURL, c.cfg.SatelliteID,
		formatCoord(lat), formatCoord(lng), formatCoord(altKm),
		c.cfg.LookaheadDays, c.cfg.MinVisibilitySeconds, c.cfg.APIKey)

	var payload passesResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, payload.Error)
	}
	if payload.Passes == nil {
		return nil, fmt.Errorf("%w: passes field not found", ErrMalformedResponse)
	}

	return *payload.Passes, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"path":   req.URL.Path,
		"status": resp.StatusCode,
	}).Debug("n2yo response")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: got %d", ErrStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
