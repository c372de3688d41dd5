package timerunner

import "math"

// SpanProgress is the dispatcher's published record of how a runner's
// cursor sits relative to one attached span. Now/Previous are seconds
// relative to the span's min; the percentage fields are value/span_length,
// or ±Inf when span_length is zero.
type SpanProgress struct {
	Now               float64
	NowPercentage     float64
	Previous          float64
	PreviousPercentage float64
}

// newSpanProgress builds the record attached on first entry into a span.
// Per the source, a brand-new record takes the window-computed previous
// values as-is; only later updates shift now into previous instead.
func newSpanProgress(previous, previousPercentage, now, nowPercentage float64) *SpanProgress {
	return &SpanProgress{
		Now:                now,
		NowPercentage:      nowPercentage,
		Previous:           previous,
		PreviousPercentage: previousPercentage,
	}
}

// update applies a subsequent dispatch pass's sample to an already
// attached record. It ignores the freshly computed previous values the
// caller may have on hand and instead shifts the existing now/now_percentage
// into previous/previous_percentage before overwriting now/now_percentage —
// this is what keeps consecutive frames continuous across the detach-free
// window.
func (sp *SpanProgress) update(now, nowPercentage float64) {
	sp.Previous = sp.Now
	sp.PreviousPercentage = sp.NowPercentage
	sp.Now = now
	sp.NowPercentage = nowPercentage
}

// Quotient classifies this record's Now sample against span — additive
// convenience beyond what the dispatcher itself needs, mirroring the
// source's is_in-style predicate.
func (sp *SpanProgress) Quotient(span TimeSpan) DurationQuotient {
	return span.Quotient(sp.Now + span.Min.Seconds())
}

// Direction reports the apparent direction of travel between Previous and
// Now, or false if they're equal (no inferrable direction).
func (sp *SpanProgress) Direction() (TimeDirection, bool) {
	switch {
	case sp.Now > sp.Previous:
		return Forward, true
	case sp.Now < sp.Previous:
		return Backward, true
	default:
		return 0, false
	}
}

// percentageOf computes value/spanLength, or a signed infinity when
// spanLength is zero: +Inf when value > 0, -Inf when value < 0, and at
// exactly zero the runner's direction breaks the tie (Forward -> +Inf,
// Backward -> -Inf).
func percentageOf(value, spanLength float64, dir TimeDirection) float64 {
	if spanLength > 0 {
		return value / spanLength
	}
	switch {
	case value > 0:
		return math.Inf(1)
	case value < 0:
		return math.Inf(-1)
	case dir == Forward:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}
}
