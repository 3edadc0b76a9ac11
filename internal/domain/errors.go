package domain

import "fmt"

// NotFoundError reports a reference to a catalog or ledger entity that does
// not exist. Unknown courts are a configuration error and fail loudly;
// unknown coach and inventory IDs are deliberately lenient and never produce
// this error.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ValidationError reports a malformed candidate request: bad date, inverted
// or out-of-range hour window, non-positive resource quantity.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// AvailabilityError carries the first failing availability check. The reason
// is surfaced verbatim to the end user; retrying with identical parameters
// will always fail identically.
type AvailabilityError struct {
	Reason string
}

func (e *AvailabilityError) Error() string {
	return e.Reason
}
