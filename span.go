package timerunner

import "time"

// TimeSpan is a bounded interval of a runner's timeline, with inclusive or
// exclusive endpoints. The zero value is the zero-length closed span
// [0, 0]; build others through NewTimeSpan or one of the convenience
// constructors below.
type TimeSpan struct {
	Min TimeBound
	Max TimeBound
}

// NewTimeSpan validates and builds a TimeSpan from explicit bounds.
// It fails with ErrNotTime if both bounds are Exclusive and equal (an
// empty open interval), and with ErrMinGreaterThanMax if min's duration
// exceeds max's.
func NewTimeSpan(min, max TimeBound) (TimeSpan, error) {
	if min.Duration > max.Duration {
		return TimeSpan{}, ErrMinGreaterThanMax
	}
	if min.Duration == max.Duration && min.Kind == BoundExclusive && max.Kind == BoundExclusive {
		return TimeSpan{}, ErrNotTime
	}
	return TimeSpan{Min: min, Max: max}, nil
}

// SpanClosedOpen builds the half-open span [a, b).
func SpanClosedOpen(a, b time.Duration) (TimeSpan, error) {
	return NewTimeSpan(Inclusive(a), Exclusive(b))
}

// SpanClosed builds the closed span [a, b].
func SpanClosed(a, b time.Duration) (TimeSpan, error) {
	return NewTimeSpan(Inclusive(a), Inclusive(b))
}

// SpanUpToOpen builds [0, b), mirroring a Rust RangeTo<Duration> conversion
// where the implicit lower bound of a non-negative duration range is zero.
func SpanUpToOpen(b time.Duration) (TimeSpan, error) {
	return SpanClosedOpen(0, b)
}

// SpanUpToClosed builds [0, b], mirroring a Rust RangeToInclusive<Duration>
// conversion.
func SpanUpToClosed(b time.Duration) (TimeSpan, error) {
	return SpanClosed(0, b)
}

// Length returns max.Duration - min.Duration.
func (s TimeSpan) Length() time.Duration {
	return s.Max.Duration - s.Min.Duration
}

// LengthSeconds returns Length as a float64 number of seconds.
func (s TimeSpan) LengthSeconds() float64 {
	return s.Length().Seconds()
}

// Quotient classifies sample (seconds) against the span. The (false, false)
// combination — failing both endpoint tests — cannot occur given the
// min ≤ max invariant, so only Before/Inside/After are ever returned.
func (s TimeSpan) Quotient(sample float64) DurationQuotient {
	if !s.Min.includesLower(sample) {
		return Before
	}
	if !s.Max.includesUpper(sample) {
		return After
	}
	return Inside
}
