package core

import (
	"math"
	"time"

	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/utils"
)

const (
	DefaultLateCutoff       = 10 * time.Hour
	DefaultHalfDayThreshold = 4 * time.Hour
)

// Rules holds the status derivation parameters for one server time zone.
type Rules struct {
	Location *time.Location
	// LateCutoff is the wall-clock time of day (hours, minutes and seconds since
	// midnight) after which a check-in is Late. It is never added to midnight as
	// elapsed time.
	LateCutoff time.Duration
	// HalfDayThreshold is the worked duration below which a day becomes Half Day.
	HalfDayThreshold time.Duration
}

func DefaultRules(loc *time.Location) Rules {
	if loc == nil {
		loc = time.Local
	}
	return Rules{
		Location:         loc,
		LateCutoff:       DefaultLateCutoff,
		HalfDayThreshold: DefaultHalfDayThreshold,
	}
}

// Today returns the calendar date of now in the rules' zone.
func (r Rules) Today(now time.Time) string {
	return utils.DateKey(now, r.Location)
}

// LateLimit returns the cutoff instant on now's calendar day.
func (r Rules) LateLimit(now time.Time) time.Time {
	return utils.AtClock(now, r.Location, r.LateCutoff)
}

// CheckInStatus is a hard cutoff: any instant after the limit is Late.
func (r Rules) CheckInStatus(now time.Time) model.Status {
	if now.After(r.LateLimit(now)) {
		return model.StatusLate
	}
	return model.StatusPresent
}

// CheckOutStatus applies the half-day override, which wins over lateness.
func (r Rules) CheckOutStatus(current model.Status, worked time.Duration) model.Status {
	if worked < r.HalfDayThreshold {
		return model.StatusHalfDay
	}
	return current
}

// RoundHours converts d to decimal hours rounded half away from zero to 2 places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
