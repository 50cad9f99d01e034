package executor

import (
	"fmt"
	"strings"
	"time"
)

// timeLayouts are tried in order: 12-hour with minutes, 12-hour without
// minutes, then 24-hour. The ordered fallback is a deliberate tolerance for
// natural-language-ish LLM output ("9:00 AM", "9 PM", "21:00").
var timeLayouts = []string{"3:04 PM", "3 PM", "15:04"}

// ResolveDateTime combines a date literal ("", "today", "tomorrow" or an ISO
// date) with a time literal ("", "h:mm AM/PM", "h AM/PM" or "HH:MM") into an
// RFC 3339 instant carrying now's timezone offset. An empty time resolves to
// now's clock time. Literals that fail every parse fallback are fatal: the
// error propagates instead of being masked.
func ResolveDateTime(dateStr, timeStr string, now time.Time) (string, error) {
	day, err := resolveDate(dateStr, now)
	if err != nil {
		return "", err
	}

	hour, minute, second := now.Clock()
	if trimmed := strings.TrimSpace(timeStr); trimmed != "" {
		parsed, err := resolveTime(trimmed)
		if err != nil {
			return "", err
		}
		hour, minute, second = parsed.Clock()
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, now.Location())
	return local.Format(time.RFC3339), nil
}

func resolveDate(dateStr string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(dateStr)) {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateStr), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q: %w", dateStr, err)
	}
	return day, nil
}

func resolveTime(timeStr string) (time.Time, error) {
	normalized := strings.ToUpper(timeStr)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, normalized); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q", timeStr)
}
