package domain

import "errors"

var (
	// ErrInvalidInput indicates a non-numeric, non-positive or unrecognized
	// planning input. The call is rejected without partial results.
	ErrInvalidInput = errors.New("invalid planning input")

	// ErrUnresolvableCeiling indicates a decompression stop did not clear
	// within the configured stop-time cap.
	ErrUnresolvableCeiling = errors.New("unresolvable decompression ceiling")
)

type PlanErrorCode string

const (
	PlanErrInvalidInput        PlanErrorCode = "INVALID_INPUT"
	PlanErrUnresolvableCeiling PlanErrorCode = "UNRESOLVABLE_CEILING"
)

// PlanError carries a machine-readable code alongside the sentinel it wraps,
// so callers can branch with errors.Is and still show a field-level message.
type PlanError struct {
	Code    PlanErrorCode
	Field   string
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	if e.Field != "" {
		return string(e.Code) + ": " + e.Field + ": " + e.Message
	}
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error { return e.Err }

// InvalidInput builds a PlanError for a rejected field.
func InvalidInput(field, message string) *PlanError {
	return &PlanError{
		Code:    PlanErrInvalidInput,
		Field:   field,
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// UnresolvableCeiling builds a PlanError for a schedule that could not clear
// a stop. cause must wrap ErrUnresolvableCeiling; it stays reachable through
// errors.As so callers can still inspect the failed stop.
func UnresolvableCeiling(cause error) *PlanError {
	return &PlanError{
		Code:    PlanErrUnresolvableCeiling,
		Message: cause.Error(),
		Err:     cause,
	}
}
