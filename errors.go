package timerunner

import (
	"errors"
)

// Errors returned by TimeSpan construction. Both are caller-recoverable:
// bad spans are a configuration mistake, not a contract violation.
var (
	// ErrNotTime is returned by NewTimeSpan when both bounds are Exclusive
	// and equal, which would describe an empty open interval.
	ErrNotTime = errors.New("timerunner: span bounds describe no time (empty exclusive interval)")

	// ErrMinGreaterThanMax is returned by NewTimeSpan when min's duration
	// exceeds max's duration.
	ErrMinGreaterThanMax = errors.New("timerunner: span min is greater than max")
)
