package timezone_test

import (
	"primecm/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { timezone.SetLocation("UTC") })

	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "iana zone", zone: "Africa/Lagos", expected: "Africa/Lagos"},
		{name: "empty falls back to utc", zone: "", expected: "UTC"},
		{name: "unknown falls back to utc", zone: "Mars/Olympus", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.SetLocation(tt.zone)

			assert.Equal(t, tt.expected, timezone.GetLocation().String())
			assert.Equal(t, tt.expected, timezone.Now().Location().String())
		})
	}
}

func TestToday(t *testing.T) {
	timezone.SetLocation("UTC")

	today := timezone.Today()

	parsed, err := time.Parse("2006-01-02", today)
	assert.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), parsed.Format("2006-01-02"))
}

func TestFormatAndParse(t *testing.T) {
	t.Cleanup(func() { timezone.SetLocation("UTC") })

	timezone.SetLocation("Africa/Lagos")

	testTime := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-02 00:30", timezone.Format(testTime, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	assert.NoError(t, err)
	assert.Equal(t, "Africa/Lagos", parsed.Location().String())
}
