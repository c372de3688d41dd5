package timerunner

import "math"

// Ticker is the capability TickPass needs from the host: enumerate
// runners, reach each one's state, and accept Ended notifications.
type Ticker interface {
	AllRunners() []RunnerID
	Runner(RunnerID) *TimeRunner
	EmitEnded(Ended)
}

// TickPass advances every non-paused, non-completed runner by
// deltaSeconds and emits an Ended event for any runner whose advance put
// it into the terminal half-plane for its (post-tick) direction and
// repeat style. The host must call TickPass before Dispatcher.Run on
// every frame.
func TickPass(host Ticker, deltaSeconds float64) {
	for _, id := range host.AllRunners() {
		runner := host.Runner(id)
		if runner == nil || runner.Paused() || runner.IsCompleted() {
			continue
		}
		runner.Tick(deltaSeconds)

		n := runner.Elapsed().NowPeriod
		dir := runner.Direction()
		rr := runner.Repeat()

		var sendEvent bool
		if rr != nil && rr.Style == PingPong {
			sendEvent = (dir == Forward && n < 0) || (dir == Backward && n >= 1)
		} else {
			sendEvent = (dir == Backward && n < 0) || (dir == Forward && n >= 1)
		}

		if sendEvent {
			var snap *Repeat
			if rr != nil {
				c := rr.Repeat
				snap = &c
			}
			host.EmitEnded(Ended{Runner: id, Direction: dir, Repeat: snap})
		}
	}
}

// Host is the capability Dispatcher.Run needs from the host: enumerate
// runners and their attached spans, and manage SpanProgress attachment.
type Host interface {
	// Runners lists every runner the host knows about, in a stable order.
	Runners() []RunnerID
	Runner(RunnerID) *TimeRunner
	IsSkipped(RunnerID) bool
	// DrainFreshlySkipped returns (and clears) runners that gained the
	// Skip marker since the last call.
	DrainFreshlySkipped() []RunnerID
	// Spans lists the SpanIDs attached to a runner, in host-supplied
	// (typically insertion) order.
	Spans(RunnerID) []SpanID
	Span(SpanID) TimeSpan
	Progress(RunnerID, SpanID) (*SpanProgress, bool)
	AttachProgress(RunnerID, SpanID, *SpanProgress)
	DetachProgress(RunnerID, SpanID)
}

// Dispatcher runs the three-phase per-frame span-progress projection
// described in the core design: finalize runners that completed on the
// previous pass, detach runners freshly marked Skip, then the main
// decision-table pass over every other active runner's spans.
type Dispatcher struct {
	justCompleted []RunnerID
}

// NewDispatcher returns a ready-to-use Dispatcher with no pending state.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Run executes one dispatch pass against host. Call this once per frame,
// after TickPass.
func (d *Dispatcher) Run(host Host) {
	d.finalizeCompleted(host)
	d.detachFreshlySkipped(host)
	d.mainPass(host)
}

func (d *Dispatcher) finalizeCompleted(host Host) {
	for _, id := range d.justCompleted {
		if host.IsSkipped(id) {
			continue
		}
		runner := host.Runner(id)
		if runner == nil || !runner.IsCompleted() {
			continue
		}
		for _, sid := range host.Spans(id) {
			host.DetachProgress(id, sid)
		}
	}
	d.justCompleted = d.justCompleted[:0]
}

func (d *Dispatcher) detachFreshlySkipped(host Host) {
	for _, id := range host.DrainFreshlySkipped() {
		for _, sid := range host.Spans(id) {
			host.DetachProgress(id, sid)
		}
	}
}

func (d *Dispatcher) mainPass(host Host) {
	for _, id := range host.Runners() {
		if host.IsSkipped(id) {
			continue
		}
		runner := host.Runner(id)
		if runner == nil || runner.IsCompleted() {
			continue
		}

		el := runner.Elapsed()
		prev, now := el.Previous, el.Now
		runnerDir := runner.Direction()

		var repeated *RepeatStyle
		if math.Floor(el.NowPeriod) != 0 && !runner.IsCompleted() {
			if rr := runner.Repeat(); rr != nil {
				s := rr.Style
				repeated = &s
			}
		}

		var localDir TimeDirection
		if repeated == nil {
			switch {
			case prev < now:
				localDir = Forward
			case prev > now:
				localDir = Backward
			default:
				localDir = runnerDir
			}
		} else {
			localDir = runnerDir
		}

		for _, sid := range host.Spans(id) {
			span := host.Span(sid)
			qp := span.Quotient(prev)
			qn := span.Quotient(now)

			useTime, ok := decideUseTime(localDir, qp, qn, repeated)
			if !ok {
				host.DetachProgress(id, sid)
				continue
			}

			minSec := span.Min.Seconds()
			spanLen := span.LengthSeconds()

			var newNow float64
			switch useTime {
			case UseCurrent:
				newNow = now - minSec
			case UseMin:
				newNow = 0
			case UseMax:
				newNow = spanLen
			}
			newPrevious := prev - minSec

			newNowPct := percentageOf(newNow, spanLen, runnerDir)
			newPrevPct := percentageOf(newPrevious, spanLen, runnerDir)

			if existing, has := host.Progress(id, sid); has {
				existing.update(newNow, newNowPct)
			} else {
				host.AttachProgress(id, sid, newSpanProgress(newPrevious, newPrevPct, newNow, newNowPct))
			}
		}

		runner.Collapse()
		if runner.IsCompleted() {
			d.justCompleted = append(d.justCompleted, id)
		}
	}
}
