package session

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

func NewStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch f := StatusFilter(s); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	default:
		return "", ErrInvalidStatusFilter
	}
}

func (f StatusFilter) Match(s *Session) bool {
	switch f {
	case FilterActive:
		return s.IsActive()
	case FilterCompleted:
		return s.IsCompleted()
	default:
		return true
	}
}

type DateRange string

const (
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
	RangeAll   DateRange = "all"
)

func NewDateRange(s string) (DateRange, error) {
	if s == "" {
		return RangeAll, nil
	}
	switch r := DateRange(s); r {
	case RangeToday, RangeWeek, RangeMonth, RangeAll:
		return r, nil
	default:
		return "", ErrInvalidDateRange
	}
}

// Since returns the lower bound of the range in loc; the zero time for RangeAll.
func (r DateRange) Since(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	switch r {
	case RangeToday:
		return startOfDay
	case RangeWeek:
		return startOfDay.AddDate(0, 0, -6)
	case RangeMonth:
		return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Time{}
	}
}

func (r DateRange) Match(s *Session, now time.Time, loc *time.Location) bool {
	since := r.Since(now, loc)
	if since.IsZero() {
		return true
	}
	return !s.EntryTime().Before(since)
}

type Filter struct {
	Status StatusFilter
	Range  DateRange
}

func (f Filter) Apply(sessions []*Session, now time.Time, loc *time.Location) []*Session {
	out := make([]*Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Status.Match(s) && f.Range.Match(s, now, loc) {
			out = append(out, s)
		}
	}
	return out
}
