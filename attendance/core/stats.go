package core

import (
	"math"
	"sort"
	"time"

	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/utils"
)

const WeekDays = 7

type MonthlySummary struct {
	Present    int     `json:"present"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	TotalHours float64 `json:"totalHours"`
}

type DailySummary struct {
	Present     int `json:"present"`
	Late        int `json:"late"`
	HalfDay     int `json:"halfDay"`
	Absent      int `json:"absent"`
	TotalMarked int `json:"totalMarked"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DayHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type DayCount struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
}

// Monthly summarises the records whose date falls in at's month and year.
func Monthly(records []model.AttendanceRecord, at time.Time, loc *time.Location) MonthlySummary {
	local := at.In(loc)
	var s MonthlySummary
	var hours float64
	for _, r := range records {
		d, err := utils.ParseDate(r.Date, loc)
		if err != nil || d.Year() != local.Year() || d.Month() != local.Month() {
			continue
		}
		switch r.Status {
		case model.StatusPresent:
			s.Present++
		case model.StatusLate:
			s.Late++
		case model.StatusHalfDay:
			s.HalfDay++
		}
		hours += r.TotalHours
	}
	s.TotalHours = math.Round(hours*100) / 100
	return s
}

// Distribution lists the non-zero status counts of s.
func (s MonthlySummary) Distribution() []NamedCount {
	all := []NamedCount{
		{Name: string(model.StatusPresent), Value: s.Present},
		{Name: string(model.StatusLate), Value: s.Late},
		{Name: string(model.StatusHalfDay), Value: s.HalfDay},
	}
	return utils.Filter(all, func(c NamedCount) bool { return c.Value > 0 })
}

// Daily counts the records dated on date. Absent counts literal Absent records only.
func Daily(records []JoinedRecord, date string) DailySummary {
	var s DailySummary
	for _, r := range records {
		if r.Date != date {
			continue
		}
		s.TotalMarked++
		switch r.Status {
		case model.StatusPresent:
			s.Present++
		case model.StatusLate:
			s.Late++
		case model.StatusHalfDay:
			s.HalfDay++
		case model.StatusAbsent:
			s.Absent++
		}
	}
	return s
}

// TrailingDates returns n calendar dates ending with at's date, oldest first.
func TrailingDates(at time.Time, loc *time.Location, n int) []string {
	day := utils.StartOfDay(at, loc)
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[n-1-i] = day.AddDate(0, 0, -i).Format(utils.DateLayout)
	}
	return dates
}

// WeeklyHours is a user's hours for the trailing week, zero where no record exists.
func WeeklyHours(records []model.AttendanceRecord, at time.Time, loc *time.Location) []DayHours {
	return utils.Map(TrailingDates(at, loc, WeekDays), func(date string) DayHours {
		rec := utils.Find(records, func(r *model.AttendanceRecord) bool { return r.Date == date })
		if rec == nil {
			return DayHours{Date: date}
		}
		return DayHours{Date: date, Hours: rec.TotalHours}
	})
}

// WeeklyPresence counts Present or Late records per day of the trailing week.
func WeeklyPresence(records []JoinedRecord, at time.Time, loc *time.Location) []DayCount {
	return utils.Map(TrailingDates(at, loc, WeekDays), func(date string) DayCount {
		n := utils.Count(records, func(r JoinedRecord) bool {
			return r.Date == date && (r.Status == model.StatusPresent || r.Status == model.StatusLate)
		})
		return DayCount{Date: date, Present: n}
	})
}

// DepartmentDistribution counts records per owner department, sorted by name.
// Records without a department are counted under model.UnknownDepartment.
func DepartmentDistribution(records []JoinedRecord) []NamedCount {
	groups := utils.GroupBy(records, func(r JoinedRecord) string {
		return utils.OrDefault(r.User.DepartmentName(), model.UnknownDepartment)
	})

	out := make([]NamedCount, 0, len(groups))
	for name, items := range groups {
		out = append(out, NamedCount{Name: name, Value: len(items)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
