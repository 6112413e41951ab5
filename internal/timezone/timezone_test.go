package timezone

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestResolve(t *testing.T) {
	r := NewResolver("America/Los_Angeles", testLogger())

	tests := []struct {
		name     string
		lat, lng float64
		want     string
	}{
		{"Los Angeles", 34.052235, -118.243683, "America/Los_Angeles"},
		{"New York", 40.7128, -74.006, "America/New_York"},
		{"London", 51.5074, -0.1278, "Europe/London"},
		{"mid-Pacific falls back", 0, -150, "America/Los_Angeles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.lat, tt.lng))
		})
	}
}

func TestResolveFallbackIsConfigurable(t *testing.T) {
	r := NewResolver("UTC", testLogger())
	assert.Equal(t, "UTC", r.Resolve(0, -150))
}
