package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

func FormatDate(value time.Time) string {
	return value.Format(dateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func IsValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

func IsValidClockTime(value string) bool {
	return clockTimePattern.MatchString(strings.TrimSpace(value))
}

// MinuteOfDay converts an "HH:MM" string to minutes since midnight.
func MinuteOfDay(clockTime string) (int, bool) {
	matches := clockTimePattern.FindStringSubmatch(strings.TrimSpace(clockTime))
	if len(matches) != 3 {
		return 0, false
	}
	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	return hours*60 + minutes, true
}

// CountDays returns the number of calendar days in the inclusive [from, to]
// range, 0 when the range is empty or malformed.
func CountDays(from string, to string) int {
	start, err := ParseDate(from)
	if err != nil {
		return 0
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func maxDate(a string, b string) string {
	if a > b {
		return a
	}
	return b
}

func minDate(a string, b string) string {
	if a < b {
		return a
	}
	return b
}
