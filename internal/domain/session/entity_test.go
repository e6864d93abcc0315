//go:build unit

package session_test

import (
	"testing"
	"time"

	"parkpass/internal/domain/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entry = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

func openSession(t *testing.T, at time.Time) *session.Session {
	t.Helper()
	s, err := session.Open(uuid.New(), "Linh", "51F-123.45", uuid.New(), "Gate A", at)
	require.NoError(t, err)
	return s
}

func TestOpen(t *testing.T) {
	t.Run("starts active", func(t *testing.T) {
		s := openSession(t, entry)
		assert.Equal(t, session.StatusActive, s.Status())
		assert.Nil(t, s.ExitTime())
		assert.Zero(t, s.Duration())
	})

	cases := []struct {
		name    string
		driver  uuid.UUID
		vehicle string
		lot     uuid.UUID
		errIs   error
	}{
		{name: "no driver", driver: uuid.Nil, vehicle: "ABC", lot: uuid.New(), errIs: session.ErrEmptyDriver},
		{name: "blank vehicle", driver: uuid.New(), vehicle: "   ", lot: uuid.New(), errIs: session.ErrEmptyVehicle},
		{name: "no lot", driver: uuid.New(), vehicle: "ABC", lot: uuid.Nil, errIs: session.ErrEmptyLot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.Open(tc.driver, "", tc.vehicle, tc.lot, "", entry)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestSession_Complete(t *testing.T) {
	t.Run("active to completed", func(t *testing.T) {
		s := openSession(t, entry)
		require.NoError(t, s.Complete(entry.Add(40*time.Minute)))
		assert.True(t, s.IsCompleted())
		assert.Equal(t, 40*time.Minute, s.Duration())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		s := openSession(t, entry)
		require.NoError(t, s.Complete(entry.Add(time.Minute)))
		err := s.Complete(entry.Add(time.Hour))
		assert.ErrorIs(t, err, session.ErrAlreadyCompleted)
		assert.Equal(t, entry.Add(time.Minute), *s.ExitTime())
	})

	t.Run("exit before entry", func(t *testing.T) {
		s := openSession(t, entry)
		assert.ErrorIs(t, s.Complete(entry.Add(-time.Minute)), session.ErrExitBeforeEntry)
		assert.True(t, s.IsActive())
	})
}

func TestSession_Clone(t *testing.T) {
	s := openSession(t, entry)
	require.NoError(t, s.Complete(entry.Add(time.Hour)))
	c := s.Clone()
	*c.ExitTime() = entry
	assert.Equal(t, entry.Add(time.Hour), *s.ExitTime())
}

func TestFilter_Apply(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	today := openSession(t, now.Add(-2*time.Hour))
	fiveDaysAgo := openSession(t, now.AddDate(0, 0, -5))
	require.NoError(t, fiveDaysAgo.Complete(fiveDaysAgo.EntryTime().Add(time.Hour)))
	lastMonth := openSession(t, now.AddDate(0, -1, 0))
	require.NoError(t, lastMonth.Complete(lastMonth.EntryTime().Add(time.Hour)))

	all := []*session.Session{today, fiveDaysAgo, lastMonth}

	cases := []struct {
		name   string
		filter session.Filter
		want   []*session.Session
	}{
		{name: "everything", filter: session.Filter{Status: session.FilterAll, Range: session.RangeAll}, want: all},
		{name: "active", filter: session.Filter{Status: session.FilterActive, Range: session.RangeAll}, want: []*session.Session{today}},
		{name: "completed this week", filter: session.Filter{Status: session.FilterCompleted, Range: session.RangeWeek}, want: []*session.Session{fiveDaysAgo}},
		{name: "today", filter: session.Filter{Status: session.FilterAll, Range: session.RangeToday}, want: []*session.Session{today}},
		{name: "this month", filter: session.Filter{Status: session.FilterAll, Range: session.RangeMonth}, want: []*session.Session{today, fiveDaysAgo}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Apply(all, now, time.UTC))
		})
	}
}

func TestNewStatusFilter(t *testing.T) {
	f, err := session.NewStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, session.FilterAll, f)

	_, err = session.NewStatusFilter("cancelled")
	assert.ErrorIs(t, err, session.ErrInvalidStatusFilter)

	_, err = session.NewDateRange("year")
	assert.ErrorIs(t, err, session.ErrInvalidDateRange)
}
