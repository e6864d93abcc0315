package response

import (
	"parkpass/internal/domain/session"
	"parkpass/internal/pkg/ptr"
	"parkpass/internal/usecase/commands"
)

type SessionResponse struct {
	ID              string  `json:"id"`
	DriverID        string  `json:"driverId"`
	DriverName      string  `json:"driverName,omitempty"`
	VehicleNumber   string  `json:"vehicleNumber"`
	LotID           string  `json:"lotId"`
	GateLocation    string  `json:"gateLocation"`
	EntryTime       int64   `json:"entryTime"`
	ExitTime        *int64  `json:"exitTime,omitempty"`
	DurationMinutes float64 `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
}

func FromSession(s *session.Session) *SessionResponse {
	res := &SessionResponse{
		ID:              s.ID().String(),
		DriverID:        s.DriverID().String(),
		DriverName:      s.DriverName(),
		VehicleNumber:   s.VehicleNumber(),
		LotID:           s.LotID().String(),
		GateLocation:    s.GateLocation(),
		EntryTime:       s.EntryTime().Unix(),
		DurationMinutes: s.Duration().Minutes(),
		Status:          s.Status().String(),
		Notes:           s.Notes(),
	}
	if exit := s.ExitTime(); exit != nil {
		res.ExitTime = ptr.To(exit.Unix())
	}
	return res
}

func FromSessions(sessions []*session.Session) []*SessionResponse {
	res := make([]*SessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = FromSession(s)
	}
	return res
}

type ScanResponse struct {
	Direction string           `json:"direction"`
	Session   *SessionResponse `json:"session"`
	// BillingDeferred is true when the exit succeeded but the charge waits for reconciliation.
	BillingDeferred bool `json:"billingDeferred"`
}

func FromScanResult(r *commands.ScanResult) *ScanResponse {
	return &ScanResponse{
		Direction:       string(r.Direction),
		Session:         FromSession(r.Session),
		BillingDeferred: r.BillingErr != nil,
	}
}

type CloseSessionResponse struct {
	Session         *SessionResponse `json:"session"`
	AvailableSpaces int              `json:"availableSpaces"`
	BillingDeferred bool             `json:"billingDeferred"`
}

func FromCloseResult(r *commands.CloseSessionResult) *CloseSessionResponse {
	res := &CloseSessionResponse{
		Session:         FromSession(r.Session),
		BillingDeferred: r.BillingErr != nil,
	}
	if r.Lot != nil {
		res.AvailableSpaces = r.Lot.AvailableSpaces()
	}
	return res
}
