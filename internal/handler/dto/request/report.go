package request

import "time"

// DashboardQuery takes RFC 3339 bounds; a zero bound falls back to the usecase default.
type DashboardQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
