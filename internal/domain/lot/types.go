package lot

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CapacityPolicy decides what an entry into a full lot does.
type CapacityPolicy string

const (
	// PolicyReject refuses the entry with ErrCapacityExceeded.
	PolicyReject CapacityPolicy = "reject"
	// PolicyClamp admits the car and pins availability at zero.
	PolicyClamp CapacityPolicy = "clamp"
)

func NewCapacityPolicy(s string) (CapacityPolicy, error) {
	switch CapacityPolicy(s) {
	case PolicyReject, PolicyClamp:
		return CapacityPolicy(s), nil
	default:
		return "", ErrInvalidPolicy
	}
}

const (
	DeltaEntry = -1
	DeltaExit  = 1
)
