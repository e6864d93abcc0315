package response

import (
	"parkpass/internal/domain/report"
	"parkpass/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type HourBucketResponse struct {
	Hour    int `json:"hour"`
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
}

type DayCountResponse struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type DriverStatResponse struct {
	DriverID   uuid.UUID       `json:"driverId"`
	DriverName string          `json:"driverName"`
	Visits     int             `json:"visits"`
	TotalHours decimal.Decimal `json:"totalHours"`
}

type SummaryResponse struct {
	TotalSessions          int     `json:"totalSessions"`
	ActiveNow              int     `json:"activeNow"`
	CompletedCount         int     `json:"completedCount"`
	TodayCount             int     `json:"todayCount"`
	BusiestHour            int     `json:"busiestHour"`
	AverageDurationMinutes float64 `json:"averageDurationMinutes" copier:"-"`
}

type DashboardResponse struct {
	Hourly     []HourBucketResponse `json:"hourly"`
	Daily      []DayCountResponse   `json:"daily"`
	TopDrivers []DriverStatResponse `json:"topDrivers"`
	Summary    SummaryResponse      `json:"summary"`
}

func FromDashboard(d *report.Dashboard) (*DashboardResponse, error) {
	res := &DashboardResponse{
		Hourly:     make([]HourBucketResponse, 0, len(d.Hourly)),
		Daily:      make([]DayCountResponse, 0, len(d.Daily)),
		TopDrivers: make([]DriverStatResponse, 0, len(d.TopDrivers)),
	}
	if err := copier.Copy(&res.Hourly, d.Hourly[:]); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.TopDrivers, d.TopDrivers); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Summary, &d.Summary); err != nil {
		return nil, err
	}
	res.Summary.AverageDurationMinutes = d.Summary.AverageDuration.Minutes()

	for _, day := range d.Daily {
		res.Daily = append(res.Daily, DayCountResponse{Day: day.Day.Format("2006-01-02"), Count: day.Count})
	}
	return res, nil
}

type ReconcileResponse struct {
	Period   string `json:"period" copier:"-"`
	Scanned  int    `json:"scanned"`
	Folded   int    `json:"folded"`
	Failed   int    `json:"failed"`
	Drifting int    `json:"drifting"`
}

func FromReconcileReport(r *commands.ReconcileReport) (*ReconcileResponse, error) {
	res := &ReconcileResponse{}
	if err := copier.Copy(res, r); err != nil {
		return nil, err
	}
	res.Period = r.Period.String()
	return res, nil
}
