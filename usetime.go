package timerunner

// UseTime is the dispatcher's decision about which time value to project
// into a span's progress record on a given tick.
type UseTime uint8

const (
	// UseCurrent projects the live cursor (now - span.min).
	UseCurrent UseTime = iota
	// UseMin projects the span's entry edge (0).
	UseMin
	// UseMax projects the span's exit edge (span length).
	UseMax
)

func (u UseTime) String() string {
	switch u {
	case UseCurrent:
		return "Current"
	case UseMin:
		return "Min"
	case UseMax:
		return "Max"
	default:
		return "UseTime(?)"
	}
}

// cell is the decision table's entry type; cellNone maps to "detach" and
// carries no UseTime.
type cell uint8

const (
	cellNone cell = iota
	cellCur
	cellMin
	cellMax
)

func (c cell) resolve() (UseTime, bool) {
	switch c {
	case cellCur:
		return UseCurrent, true
	case cellMin:
		return UseMin, true
	case cellMax:
		return UseMax, true
	default:
		return 0, false
	}
}

// Each table is indexed [qp][qn] with Before=0, Inside=1, After=2.
// Dashes in spec.md's published table ("unreachable" cells) are encoded
// as cellNone, same as a real None, so they detach progress. Some of them
// are reached in practice: a tick that stays wholly before or after a span
// (Before->Before going Forward, for example) lands on one.
var (
	noRepeatForward = [3][3]cell{
		{cellNone, cellCur, cellCur},
		{cellNone, cellCur, cellCur},
		{cellNone, cellNone, cellNone},
	}
	noRepeatBackward = [3][3]cell{
		{cellNone, cellNone, cellNone},
		{cellCur, cellCur, cellNone},
		{cellCur, cellCur, cellNone},
	}
	wrapForward = [3][3]cell{
		{cellMax, cellCur, cellCur},
		{cellMax, cellCur, cellCur},
		{cellNone, cellCur, cellCur},
	}
	wrapBackward = [3][3]cell{
		{cellCur, cellCur, cellNone},
		{cellCur, cellCur, cellMin},
		{cellCur, cellCur, cellMin},
	}
	pingForward = [3][3]cell{
		{cellNone, cellCur, cellCur},
		{cellCur, cellCur, cellCur},
		{cellCur, cellCur, cellCur},
	}
	pingBackward = [3][3]cell{
		{cellCur, cellCur, cellCur},
		{cellCur, cellCur, cellCur},
		{cellCur, cellCur, cellNone},
	}
)

// decideUseTime consults the decision table for (direction, qp, qn,
// repeated). repeated is nil for a single-period tick, or points at the
// style that was crossed this tick (the runner's direction has already
// been flipped for PingPong by the time this is called).
func decideUseTime(dir TimeDirection, qp, qn DurationQuotient, repeated *RepeatStyle) (UseTime, bool) {
	var table *[3][3]cell
	switch {
	case repeated == nil:
		if dir == Forward {
			table = &noRepeatForward
		} else {
			table = &noRepeatBackward
		}
	case *repeated == WrapAround:
		if dir == Forward {
			table = &wrapForward
		} else {
			table = &wrapBackward
		}
	default: // PingPong
		if dir == Forward {
			table = &pingForward
		} else {
			table = &pingBackward
		}
	}
	return table[qp][qn].resolve()
}
