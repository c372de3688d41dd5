package timerunner

// Elapsed is a TimeRunner's cursor: the current and previous sample, each
// paired with its unclamped period coordinate. Now and Previous are
// clamped into [0, length]; the *Period fields are the unclamped
// fractional position x/length at the tick that produced them, and may
// fall below 0 or above 1 to record that the tick crossed a period
// boundary.
type Elapsed struct {
	Now            float64
	NowPeriod      float64
	Previous       float64
	PreviousPeriod float64
}
