package rates

import "fmt"

// InvalidRateKind is raised when a channel's evaluated rate is negative or NaN.
type InvalidRateKind struct {
	// Channel is the id whose evaluation produced the invalid rate
	Channel int
	// Rate is the offending value, formatted at the raise site
	Rate string
}

func (e InvalidRateKind) Error() string {
	return fmt.Sprintf("channel %d evaluated to invalid rate %s (must be non-negative, not NaN)", e.Channel, e.Rate)
}

// Is lets callers match this error kind via errors.Is, regardless of field values.
func (e InvalidRateKind) Is(target error) bool {
	_, ok := target.(InvalidRateKind)
	return ok
}
