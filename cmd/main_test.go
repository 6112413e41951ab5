package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/hughchaozhang/iss-tracker/internal/config"
)

func TestPromptLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full input", "Boston\nMA\nUSA\n", "Boston, MA, USA"},
		{"country defaults to USA", "Boston\nMA\n\n", "Boston, MA, USA"},
		{"state skipped", "Paris\n\nFrance\n", "Paris, France"},
		{"empty city uses default", "\n", ""},
		{"whitespace city uses default", "   \n", ""},
		{"eof after city", "Tokyo\n", "Tokyo, USA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := promptLocation(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "press Enter for Los Angeles")
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := newLogger(config.LoggingConfig{Level: "debug", Format: "json"})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger = newLogger(config.LoggingConfig{Level: "nonsense", Format: "text"})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
