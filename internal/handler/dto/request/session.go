package request

import (
	"parkpass/internal/domain/session"
	"parkpass/internal/usecase/queries"

	"github.com/google/uuid"
)

// ListSessionsQuery is bound from the query string.
type ListSessionsQuery struct {
	LotID  string `form:"lotId" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=all active completed"`
	Range  string `form:"range" binding:"omitempty,oneof=today week month all"`
}

func (q *ListSessionsQuery) ToParams() (queries.SessionListParams, error) {
	var params queries.SessionListParams

	if q.LotID != "" {
		id, err := uuid.Parse(q.LotID)
		if err != nil {
			return params, err
		}
		params.LotID = id
	}

	status, err := session.NewStatusFilter(q.Status)
	if err != nil {
		return params, err
	}
	dateRange, err := session.NewDateRange(q.Range)
	if err != nil {
		return params, err
	}

	params.Status = status
	params.Range = dateRange
	return params, nil
}
