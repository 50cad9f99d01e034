package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed clock in a non-UTC zone so offset handling is visible in the output.
var testNow = time.Date(2025, 3, 10, 14, 30, 45, 0, time.FixedZone("CET", 3600))

func TestResolveDateTime_TodayDefaultsToNowClock(t *testing.T) {
	got, err := ResolveDateTime("today", "", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T14:30:45+01:00", got)
}

func TestResolveDateTime_EmptyDateIsToday(t *testing.T) {
	got, err := ResolveDateTime("", "", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Format(time.RFC3339), got)
}

func TestResolveDateTime_TomorrowEvening(t *testing.T) {
	got, err := ResolveDateTime("tomorrow", "9 PM", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11T21:00:00+01:00", got)
}

func TestResolveDateTime_ISODateTwentyFourHour(t *testing.T) {
	got, err := ResolveDateTime("2025-01-15", "21:00", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T21:00:00+01:00", got)
}

func TestResolveDateTime_TwelveHourWithMinutes(t *testing.T) {
	got, err := ResolveDateTime("2025-01-15", "9:30 AM", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T09:30:00+01:00", got)
}

func TestResolveDateTime_LowercaseMeridiem(t *testing.T) {
	got, err := ResolveDateTime("today", "9:00 pm", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T21:00:00+01:00", got)
}

func TestResolveDateTime_CaseInsensitiveDateWords(t *testing.T) {
	got, err := ResolveDateTime("Tomorrow", "", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11T14:30:45+01:00", got)
}

func TestResolveDateTime_BadDateIsFatal(t *testing.T) {
	_, err := ResolveDateTime("next tuesday", "", testNow)
	assert.Error(t, err)
}

func TestResolveDateTime_BadTimeIsFatal(t *testing.T) {
	_, err := ResolveDateTime("today", "half past nine", testNow)
	assert.Error(t, err)
}
