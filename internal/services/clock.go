package services

import "time"

// Clock supplies the current day and wall-clock minute so the reminder scan
// and the ledger can run against injected time in tests.
type Clock interface {
	Now() time.Time
	Today() string
	NowMinuteOfDay() int
}

type locationClock struct {
	location *time.Location
}

func NewClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return &locationClock{location: location}
}

func (clock *locationClock) Now() time.Time {
	return time.Now().In(clock.location)
}

func (clock *locationClock) Today() string {
	return FormatDate(clock.Now())
}

func (clock *locationClock) NowMinuteOfDay() int {
	now := clock.Now()
	return now.Hour()*60 + now.Minute()
}
