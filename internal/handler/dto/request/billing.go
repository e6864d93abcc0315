package request

import (
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/pkg/ptr"
)

// ReconcileRequest defaults to the current month in loc when a field is omitted.
type ReconcileRequest struct {
	Year  *int `json:"year" binding:"omitempty,min=2000,max=9999"`
	Month *int `json:"month" binding:"omitempty,min=1,max=12"`
}

func (r *ReconcileRequest) ToPeriod(now time.Time, loc *time.Location) (invoice.Period, error) {
	current := invoice.PeriodOf(now, loc)
	year := ptr.Or(r.Year, current.Year)
	month := ptr.Or(r.Month, int(current.Month))
	return invoice.NewPeriod(year, month)
}
