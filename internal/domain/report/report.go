// Package report builds dashboard statistics from session lists.
// Every function is pure and deterministic for a given input and "now".
package report

import (
	"cmp"
	"slices"
	"time"

	"parkpass/internal/domain/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultTopDrivers = 5

type HourBucket struct {
	Hour    int `json:"hour"`
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
}

type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

type DriverStat struct {
	DriverID   uuid.UUID       `json:"driverId"`
	DriverName string          `json:"driverName"`
	Visits     int             `json:"visits"`
	TotalHours decimal.Decimal `json:"totalHours"`
}

type Summary struct {
	TotalSessions   int           `json:"totalSessions"`
	ActiveNow       int           `json:"activeNow"`
	CompletedCount  int           `json:"completedCount"`
	TodayCount      int           `json:"todayCount"`
	BusiestHour     int           `json:"busiestHour"`
	AverageDuration time.Duration `json:"averageDuration"`
}

type Dashboard struct {
	Hourly     [24]HourBucket `json:"hourly"`
	Daily      []DayCount     `json:"daily"`
	TopDrivers []DriverStat   `json:"topDrivers"`
	Summary    Summary        `json:"summary"`
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// HourlyHistogram counts entries and exits separately, each in the hour of its own timestamp.
func HourlyHistogram(sessions []*session.Session, loc *time.Location) [24]HourBucket {
	loc = location(loc)
	var bins [24]HourBucket
	for h := range bins {
		bins[h].Hour = h
	}
	for _, s := range sessions {
		bins[s.EntryTime().In(loc).Hour()].Entries++
		if exit := s.ExitTime(); exit != nil {
			bins[exit.In(loc).Hour()].Exits++
		}
	}
	return bins
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DailyTrend is keyed by start of day and sorted ascending.
func DailyTrend(sessions []*session.Session, loc *time.Location) []DayCount {
	loc = location(loc)
	counts := make(map[time.Time]int)
	for _, s := range sessions {
		counts[startOfDay(s.EntryTime(), loc)]++
	}

	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Day: day, Count: n})
	}
	slices.SortFunc(out, func(a, b DayCount) int {
		return a.Day.Compare(b.Day)
	})
	return out
}

// TopDrivers ranks by visits, ties broken by driver id. Hours come only from sessions with an exit.
func TopDrivers(sessions []*session.Session, n int) []DriverStat {
	if n <= 0 {
		n = DefaultTopDrivers
	}
	byDriver := make(map[uuid.UUID]*DriverStat)
	for _, s := range sessions {
		stat, ok := byDriver[s.DriverID()]
		if !ok {
			stat = &DriverStat{DriverID: s.DriverID(), DriverName: s.DriverName(), TotalHours: decimal.Zero}
			byDriver[s.DriverID()] = stat
		}
		stat.Visits++
		if s.ExitTime() != nil {
			stat.TotalHours = stat.TotalHours.Add(hoursOf(s.Duration()))
		}
	}

	out := make([]DriverStat, 0, len(byDriver))
	for _, stat := range byDriver {
		out = append(out, *stat)
	}
	slices.SortFunc(out, func(a, b DriverStat) int {
		if c := cmp.Compare(b.Visits, a.Visits); c != 0 {
			return c
		}
		return cmp.Compare(a.DriverID.String(), b.DriverID.String())
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func hoursOf(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d / time.Second)).Div(decimal.NewFromInt(3600)).Round(2)
}

func Summarize(sessions []*session.Session, now time.Time, loc *time.Location) Summary {
	loc = location(loc)
	today := startOfDay(now, loc)

	sum := Summary{TotalSessions: len(sessions)}
	var total time.Duration
	for _, s := range sessions {
		if s.IsActive() {
			sum.ActiveNow++
		}
		if s.IsCompleted() && s.ExitTime() != nil {
			sum.CompletedCount++
			total += s.Duration()
		}
		if !s.EntryTime().Before(today) {
			sum.TodayCount++
		}
	}
	if sum.CompletedCount > 0 {
		sum.AverageDuration = total / time.Duration(sum.CompletedCount)
	}

	busiest := 0
	for _, b := range HourlyHistogram(sessions, loc) {
		if b.Entries > busiest {
			busiest = b.Entries
			sum.BusiestHour = b.Hour
		}
	}
	return sum
}

func Build(sessions []*session.Session, now time.Time, loc *time.Location) Dashboard {
	return Dashboard{
		Hourly:     HourlyHistogram(sessions, loc),
		Daily:      DailyTrend(sessions, loc),
		TopDrivers: TopDrivers(sessions, DefaultTopDrivers),
		Summary:    Summarize(sessions, now, loc),
	}
}
