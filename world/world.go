// Package world is a minimal, single-threaded reference host for the
// timerunner core: it owns runners and their attached spans, and
// implements the timerunner.Host/timerunner.Ticker contracts so the core
// dispatcher can be driven end to end without inventing a second storage
// spec. It is scaffolding for tests and the demo CLI, not part of the
// core's own budget.
package world

import (
	"github.com/arfen-dev/timerunner"
)

// RunnerID and SpanID are re-exported from the core: the host mints them,
// the core only ever compares and carries them.
type (
	RunnerID = timerunner.RunnerID
	SpanID   = timerunner.SpanID
)

// World owns every TimeRunner and TimeSpan in a scene, plus the
// SpanProgress records the dispatcher attaches and detaches as runners
// move through their spans. Spans are kept in an insertion-ordered slice
// per runner, a direct simplification of the teacher's intrusive
// timerLst: this host is single-threaded, so there is no need for the
// doubly-linked, atomically-tagged list the teacher uses to support
// concurrent wheel rotation.
type World struct {
	nextRunner uint64
	nextSpan   uint64

	runners map[RunnerID]*timerunner.TimeRunner
	order   []RunnerID

	spans     map[SpanID]timerunner.TimeSpan
	spanOwner map[SpanID]RunnerID
	spanOrder map[RunnerID][]SpanID

	progress map[RunnerID]map[SpanID]*timerunner.SpanProgress

	skipped   map[RunnerID]bool
	freshSkip []RunnerID

	ended []timerunner.Ended
}

// New returns an empty World, ready to accept runners.
func New() *World {
	return &World{
		runners:   make(map[RunnerID]*timerunner.TimeRunner),
		spans:     make(map[SpanID]timerunner.TimeSpan),
		spanOwner: make(map[SpanID]RunnerID),
		spanOrder: make(map[RunnerID][]SpanID),
		progress:  make(map[RunnerID]map[SpanID]*timerunner.SpanProgress),
		skipped:   make(map[RunnerID]bool),
	}
}

// AddRunner takes ownership of r and mints a RunnerID for it.
func (w *World) AddRunner(r *timerunner.TimeRunner) RunnerID {
	w.nextRunner++
	id := RunnerID(w.nextRunner)
	w.runners[id] = r
	w.order = append(w.order, id)
	return id
}

// RemoveRunner drops a runner along with every span attached to it.
func (w *World) RemoveRunner(id RunnerID) {
	for _, sid := range w.spanOrder[id] {
		delete(w.spans, sid)
		delete(w.spanOwner, sid)
	}
	delete(w.spanOrder, id)
	delete(w.progress, id)
	delete(w.runners, id)
	delete(w.skipped, id)
	for i, rid := range w.order {
		if rid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// AttachSpan adds span as a child of runner, appended after any spans
// already attached to it, and mints a SpanID for it.
func (w *World) AttachSpan(runner RunnerID, span timerunner.TimeSpan) SpanID {
	w.nextSpan++
	id := SpanID(w.nextSpan)
	w.spans[id] = span
	w.spanOwner[id] = runner
	w.spanOrder[runner] = append(w.spanOrder[runner], id)
	return id
}

// DetachSpan removes a span and any progress record attached to it.
func (w *World) DetachSpan(id SpanID) {
	runner, ok := w.spanOwner[id]
	if !ok {
		return
	}
	if m, ok := w.progress[runner]; ok {
		delete(m, id)
	}
	delete(w.spans, id)
	delete(w.spanOwner, id)
	order := w.spanOrder[runner]
	for i, sid := range order {
		if sid == id {
			w.spanOrder[runner] = append(order[:i], order[i+1:]...)
			break
		}
	}
}

// Runners implements timerunner.Host and timerunner.Ticker.
func (w *World) Runners() []RunnerID    { return w.order }
func (w *World) AllRunners() []RunnerID { return w.order }

// Runner implements timerunner.Host and timerunner.Ticker.
func (w *World) Runner(id RunnerID) *timerunner.TimeRunner { return w.runners[id] }

// Spans implements timerunner.Host.
func (w *World) Spans(id RunnerID) []SpanID { return w.spanOrder[id] }

// Span implements timerunner.Host.
func (w *World) Span(id SpanID) timerunner.TimeSpan { return w.spans[id] }

// Progress implements timerunner.Host.
func (w *World) Progress(rid RunnerID, sid SpanID) (*timerunner.SpanProgress, bool) {
	m, ok := w.progress[rid]
	if !ok {
		return nil, false
	}
	sp, ok := m[sid]
	return sp, ok
}

// AttachProgress implements timerunner.Host.
func (w *World) AttachProgress(rid RunnerID, sid SpanID, sp *timerunner.SpanProgress) {
	m, ok := w.progress[rid]
	if !ok {
		m = make(map[SpanID]*timerunner.SpanProgress)
		w.progress[rid] = m
	}
	m[sid] = sp
}

// DetachProgress implements timerunner.Host.
func (w *World) DetachProgress(rid RunnerID, sid SpanID) {
	if m, ok := w.progress[rid]; ok {
		delete(m, sid)
	}
}

// EmitEnded implements timerunner.Ticker by buffering the notification;
// callers drain it with Ended. The transport is a host concern the core
// deliberately leaves open — a real host might fan this out to an event
// bus instead.
func (w *World) EmitEnded(e timerunner.Ended) {
	w.ended = append(w.ended, e)
}

// Ended drains and returns every Ended notification queued since the
// last call.
func (w *World) Ended() []timerunner.Ended {
	e := w.ended
	w.ended = nil
	return e
}
