package timerunner

import (
	"math"
	"time"
)

// TimeRunner is a stateful per-frame timer: it owns an elapsed cursor and
// advances it under a direction, a time scale, and an optional repeat
// policy. The cursor changes only through Tick/RawTick/SetTick/Collapse;
// the other methods read or set the runner's configuration.
type TimeRunner struct {
	paused    bool
	elapsed   Elapsed
	length    time.Duration
	direction TimeDirection
	timeScale float64
	repeat    *RunnerRepeat
}

// New constructs a TimeRunner with direction=Forward, time_scale=1,
// repeat=nil, paused=false and a zeroed cursor.
func New(length time.Duration) *TimeRunner {
	return &TimeRunner{
		length:    length,
		direction: Forward,
		timeScale: 1,
	}
}

// Paused reports whether the runner is currently paused.
func (r *TimeRunner) Paused() bool { return r.paused }

// SetPaused sets the pause flag directly.
func (r *TimeRunner) SetPaused(p bool) { r.paused = p }

// Pause stops the runner from advancing on Tick.
func (r *TimeRunner) Pause() { r.paused = true }

// Resume lets the runner advance on Tick again.
func (r *TimeRunner) Resume() { r.paused = false }

// TogglePause flips the pause flag and returns the new value.
func (r *TimeRunner) TogglePause() bool {
	r.paused = !r.paused
	return r.paused
}

// Elapsed returns a copy of the runner's cursor.
func (r *TimeRunner) Elapsed() Elapsed { return r.elapsed }

// Length returns the runner's configured length.
func (r *TimeRunner) Length() time.Duration { return r.length }

// SetLength changes the runner's length. It does not reclamp the current
// cursor; the next tick will (SetTick does not clamp).
func (r *TimeRunner) SetLength(length time.Duration) { r.length = length }

// Direction returns the runner's current direction. Note PingPong repeats
// can flip this as a side effect of RawTick.
func (r *TimeRunner) Direction() TimeDirection { return r.direction }

// SetDirection overwrites the runner's direction.
func (r *TimeRunner) SetDirection(d TimeDirection) { r.direction = d }

// TimeScale returns the runner's tick multiplier.
func (r *TimeRunner) TimeScale() float64 { return r.timeScale }

// SetTimeScale overwrites the runner's tick multiplier.
func (r *TimeRunner) SetTimeScale(scale float64) { r.timeScale = scale }

// Repeat returns the runner's repeat policy, or nil if it does not repeat.
func (r *TimeRunner) Repeat() *RunnerRepeat { return r.repeat }

// SetRepeat overwrites the runner's repeat policy. Pass nil to make the
// runner non-repeating.
func (r *TimeRunner) SetRepeat(rr *RunnerRepeat) { r.repeat = rr }

// IsCompleted reports whether the runner's repeat policy is exhausted (or
// absent) and its cursor sits at the terminal edge for its current
// direction. The Forward and Backward edge tests are deliberately
// asymmetric: Forward compares period coordinates, Backward compares raw
// now/previous — this mirrors the source exactly.
func (r *TimeRunner) IsCompleted() bool {
	repeatDone := r.repeat == nil || r.repeat.Repeat.Exhausted()
	if !repeatDone {
		return false
	}
	if r.direction == Forward {
		return r.elapsed.NowPeriod >= 1 && r.elapsed.NowPeriod == r.elapsed.PreviousPeriod
	}
	return r.elapsed.NowPeriod <= 0 && r.elapsed.Now == r.elapsed.Previous
}

// Tick is a no-op if the runner is paused or already completed; otherwise
// it scales secs by TimeScale and calls RawTick.
func (r *TimeRunner) Tick(secs float64) {
	if r.paused || r.IsCompleted() {
		return
	}
	r.RawTick(secs * r.timeScale)
}

// RawTick is the core advance kernel, unconditional of pause/completion.
// It panics if secs is NaN: that is a programmer error, not a runtime
// condition the caller can recover from.
func (r *TimeRunner) RawTick(secs float64) {
	if math.IsNaN(secs) {
		panic("timerunner: RawTick received NaN")
	}

	L := r.length.Seconds()
	n0 := r.elapsed.Now

	var n1 float64
	if r.direction == Forward {
		n1 = n0 + secs
	} else {
		n1 = n0 - secs
	}

	var p float64
	if L != 0 {
		p = n1 / L
	}
	k := int64(math.Floor(p))

	noBudget := r.repeat != nil && r.repeat.Repeat.kind == RepeatTimes && r.repeat.Repeat.Exhausted()
	if r.repeat == nil || k == 0 || noBudget {
		r.clampWrite(n1, p)
		return
	}

	var advance int64
	if r.direction == Forward {
		advance = k
	} else {
		advance = -k
	}
	consumed := r.repeat.Repeat.AdvanceBy(advance)
	if consumed == 0 {
		r.clampWrite(n1, p)
		return
	}

	var wrapped float64
	switch r.repeat.Style {
	case WrapAround:
		wrapped = euclidMod(n1, L)
	case PingPong:
		wrapped = math.Abs(euclidMod(n1+L, 2*L) - L)
	}
	r.elapsed.Now = wrapped
	r.elapsed.NowPeriod = p

	if r.repeat.Style == PingPong && k%2 != 0 {
		r.direction = r.direction.flipped()
	}
}

// clampWrite implements the non-repeating branch: clamp n1 into [0, L],
// setting now_period to 1 or 0 respectively when the clamp actually
// bites, or to the true unclamped p otherwise.
func (r *TimeRunner) clampWrite(n1, p float64) {
	L := r.length.Seconds()
	switch {
	case n1 < 0:
		r.elapsed.Now = 0
		r.elapsed.NowPeriod = 0
	case n1 > L:
		r.elapsed.Now = L
		r.elapsed.NowPeriod = 1
	default:
		r.elapsed.Now = n1
		r.elapsed.NowPeriod = p
	}
}

// SetTick jumps the cursor directly: it overwrites now and recomputes
// now_period, without touching previous/previous_period. Unlike RawTick
// this performs no clamping; callers that need [0, length] clamping are
// expected to pass an already-valid secs.
func (r *TimeRunner) SetTick(secs float64) {
	r.elapsed.Now = secs
	L := r.length.Seconds()
	if L != 0 {
		r.elapsed.NowPeriod = secs / L
	} else {
		r.elapsed.NowPeriod = 0
	}
}

// Collapse closes the window the dispatcher just consumed: previous :=
// now, previous_period := now_period. Idempotent: calling it twice in a
// row leaves state unchanged the second time.
func (r *TimeRunner) Collapse() {
	r.elapsed.Previous = r.elapsed.Now
	r.elapsed.PreviousPeriod = r.elapsed.NowPeriod
}

// euclidMod returns a mod n with a Euclidean (always non-negative when
// n > 0) result, unlike math.Mod which keeps the sign of a.
func euclidMod(a, n float64) float64 {
	if n == 0 {
		return 0
	}
	m := math.Mod(a, n)
	if m < 0 {
		m += n
	}
	return m
}
