package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Duration
	}{
		{name: "iso full", raw: "PT11M59.00S", expected: 11*time.Minute + 59*time.Second},
		{name: "iso zero", raw: "PT00M00.00S", expected: 0},
		{name: "iso fractional", raw: "PT00M24.70S", expected: 24*time.Second + 700*time.Millisecond},
		{name: "iso seconds only", raw: "PT35.00S", expected: 35 * time.Second},
		{name: "colon", raw: "11:59", expected: 11*time.Minute + 59*time.Second},
		{name: "colon fractional", raw: "0:24.7", expected: 24*time.Second + 700*time.Millisecond},
		{name: "colon zero", raw: "0:00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseClock(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, raw := range []string{"", "  ", "eleven", "11:99", "-1:30", "PTxxMyyS", "PT1M2S3"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseClock(raw)
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestClockSecondsTruncates(t *testing.T) {
	e := PlayEvent{Clock: 24*time.Second + 700*time.Millisecond}
	assert.Equal(t, 24, e.ClockSeconds())
}
