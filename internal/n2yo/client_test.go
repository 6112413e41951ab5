package n2yo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestClient builds a client against a test server with the courtesy
// delay removed so tests stay fast.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL:              baseURL,
		APIKey:               "test-key",
		SatelliteID:          25544,
		LookaheadDays:        10,
		MinVisibilitySeconds: 300,
	}, testLogger())
	require.NoError(t, err)
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "https://api.n2yo.com/rest/v1/satellite"}, testLogger())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPositionSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/positions/25544/0/0/0/1", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{
			"info": {"satname": "SPACE STATION", "satid": 25544},
			"positions": [
				{"satlatitude": -22.45, "satlongitude": 130.01, "sataltitude": 420.77},
				{"satlatitude": -22.50, "satlongitude": 130.10, "sataltitude": 420.80}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	pos, err := c.Position(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, -22.45, pos.Latitude, 1e-9)
	assert.InDelta(t, 130.01, pos.Longitude, 1e-9)
	assert.InDelta(t, 420.77, pos.AltitudeKm, 1e-9)
}

func TestPositionFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "service error field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error": "Invalid API Key!"}`))
			},
			wantErr: ErrAPIError,
		},
		{
			name: "positions field missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"info": {"satname": "SPACE STATION"}}`))
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "positions array empty",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"positions": []}`))
			},
			wantErr: ErrNoPositions,
		},
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
			wantErr: ErrStatus,
		},
		{
			name: "malformed numeric fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"positions": [{"satlatitude": "garbage"}]}`))
			},
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := newTestClient(t, srv.URL)

			pos, err := c.Position(context.Background())
			assert.Nil(t, pos)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPositionTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // client now dials a dead server

	c := newTestClient(t, srv.URL)

	pos, err := c.Position(context.Background())
	assert.Nil(t, pos)
	assert.ErrorIs(t, err, ErrRequest)
}

func TestPositionAppliesCourtesyDelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"positions": [{"satlatitude": 1, "satlongitude": 2, "sataltitude": 3}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", SatelliteID: 25544}, testLogger())
	require.NoError(t, err)

	start := time.Now()
	_, err = c.Position(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestPassesSuccessPreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/visualpasses/25544/34.052235/-118.243683/0/10/300", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{
			"info": {"passescount": 2},
			"passes": [
				{"startUTC": 1700000000, "endUTC": 1700000600, "startAz": 230.5, "endAz": 45.0, "maxEl": 77.3, "duration": 600},
				{"startUTC": 1700086400, "endUTC": 1700086900, "startAz": 300.0, "endAz": 120.0, "maxEl": 15.0, "duration": 500}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	passes, err := c.Passes(context.Background(), 34.052235, -118.243683, 0)
	require.NoError(t, err)
	require.Len(t, passes, 2)
	assert.Equal(t, int64(1700000000), passes[0].StartUTC)
	assert.Equal(t, 230.5, passes[0].StartAzimuth)
	assert.Equal(t, 77.3, passes[0].MaxElevation)
	assert.Equal(t, int64(1700086400), passes[1].StartUTC)
}

func TestPassesEmptyArrayIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"info": {"passescount": 0}, "passes": []}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	passes, err := c.Passes(context.Background(), 34.05, -118.24, 0)
	require.NoError(t, err)
	assert.NotNil(t, passes)
	assert.Empty(t, passes)
}

func TestPassesMissingFieldIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"info": {"passescount": 0}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	passes, err := c.Passes(context.Background(), 34.05, -118.24, 0)
	assert.Nil(t, passes)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPassesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	passes, err := c.Passes(context.Background(), 34.05, -118.24, 0)
	assert.Nil(t, passes)
	assert.ErrorIs(t, err, ErrStatus)
}
