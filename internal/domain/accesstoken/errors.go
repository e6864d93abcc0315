package accesstoken

import "errors"

type Kind string

const (
	KindMalformed         Kind = "MALFORMED_TOKEN"
	KindInvalidTimestamp  Kind = "INVALID_TIMESTAMP"
	KindEmptySubject      Kind = "EMPTY_SUBJECT"
	KindEmptyVehicle      Kind = "EMPTY_VEHICLE"
	KindIntegrityMismatch Kind = "INTEGRITY_MISMATCH"
	KindExpired           Kind = "EXPIRED"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its kind.
var (
	ErrMalformedToken    = &Error{Kind: KindMalformed}
	ErrInvalidTimestamp  = &Error{Kind: KindInvalidTimestamp}
	ErrEmptySubject      = &Error{Kind: KindEmptySubject}
	ErrEmptyVehicle      = &Error{Kind: KindEmptyVehicle}
	ErrIntegrityMismatch = &Error{Kind: KindIntegrityMismatch}
	ErrExpired           = &Error{Kind: KindExpired}
)

type Error struct {
	Kind   Kind
	detail string
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, detail: detail}
}

func (e *Error) Error() string {
	if e.detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.detail
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// UserMessage is the short text shown at the gate for a rejected scan.
func UserMessage(err error) string {
	kind, ok := KindOf(err)
	if !ok {
		return "Invalid QR code"
	}
	switch kind {
	case KindExpired:
		return "QR code expired, request a new one"
	case KindIntegrityMismatch:
		return "QR code has been tampered with"
	default:
		return "Invalid QR code"
	}
}
