package timezone

import "time"

// The salon is in Casablanca; calendar dates ("today", "tomorrow") are
// always evaluated in its local time.
const DefaultTimezone = "Africa/Casablanca"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns the salon-local calendar date as an ISO string, the format
// appointments store their date in.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}

// Tomorrow returns the next salon-local calendar date as an ISO string.
func Tomorrow(tz string) string {
	return NowIn(tz).AddDate(0, 0, 1).Format("2006-01-02")
}
