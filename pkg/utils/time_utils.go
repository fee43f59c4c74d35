package utils

import (
	"fmt"
	"strconv"
	"strings"
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func GetDayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "Unknown"
	}
	return dayNames[dayOfWeek]
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	return hours*60 + minutes, nil
}

// WithinOpenInterval reports whether now (minutes since midnight) falls in the
// open..close window. A closing time earlier than the opening time is an
// overnight span and wraps past midnight.
func WithinOpenInterval(nowMinutes, openMinutes, closeMinutes int) bool {
	if closeMinutes < openMinutes {
		return nowMinutes >= openMinutes || nowMinutes <= closeMinutes
	}
	return nowMinutes >= openMinutes && nowMinutes <= closeMinutes
}

// FormatTimeForDisplay renders an "HH:MM" value as a 12-hour time, dropping
// the minutes when they are zero ("14:30" -> "2:30 PM", "09:00" -> "9 AM").
func FormatTimeForDisplay(clock string) string {
	if clock == "" {
		return ""
	}
	total, err := ParseClock(clock)
	if err != nil {
		return clock
	}
	hours := total / 60
	minutes := total % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}

	if minutes > 0 {
		return fmt.Sprintf("%d:%02d %s", displayHours, minutes, period)
	}
	return fmt.Sprintf("%d %s", displayHours, period)
}
