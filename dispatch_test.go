package timerunner

import (
	"math"
	"testing"
	"time"
)

// fakeHost is a minimal in-memory Host/Ticker used only to exercise the
// dispatcher in isolation, without pulling in the reference host package.
type fakeHost struct {
	runners   map[RunnerID]*TimeRunner
	order     []RunnerID
	spans     map[SpanID]TimeSpan
	spanOrder map[RunnerID][]SpanID
	progress  map[RunnerID]map[SpanID]*SpanProgress
	skipped   map[RunnerID]bool
	fresh     []RunnerID
	ended     []Ended
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		runners:   make(map[RunnerID]*TimeRunner),
		spans:     make(map[SpanID]TimeSpan),
		spanOrder: make(map[RunnerID][]SpanID),
		progress:  make(map[RunnerID]map[SpanID]*SpanProgress),
		skipped:   make(map[RunnerID]bool),
	}
}

func (h *fakeHost) addRunner(id RunnerID, r *TimeRunner) {
	h.runners[id] = r
	h.order = append(h.order, id)
}

func (h *fakeHost) attachSpan(rid RunnerID, sid SpanID, s TimeSpan) {
	h.spans[sid] = s
	h.spanOrder[rid] = append(h.spanOrder[rid], sid)
}

func (h *fakeHost) AllRunners() []RunnerID { return h.order }
func (h *fakeHost) Runners() []RunnerID    { return h.order }
func (h *fakeHost) Runner(id RunnerID) *TimeRunner { return h.runners[id] }
func (h *fakeHost) IsSkipped(id RunnerID) bool      { return h.skipped[id] }
func (h *fakeHost) DrainFreshlySkipped() []RunnerID {
	f := h.fresh
	h.fresh = nil
	return f
}
func (h *fakeHost) Spans(id RunnerID) []SpanID { return h.spanOrder[id] }
func (h *fakeHost) Span(sid SpanID) TimeSpan   { return h.spans[sid] }
func (h *fakeHost) Progress(rid RunnerID, sid SpanID) (*SpanProgress, bool) {
	m, ok := h.progress[rid]
	if !ok {
		return nil, false
	}
	sp, ok := m[sid]
	return sp, ok
}
func (h *fakeHost) AttachProgress(rid RunnerID, sid SpanID, sp *SpanProgress) {
	m, ok := h.progress[rid]
	if !ok {
		m = make(map[SpanID]*SpanProgress)
		h.progress[rid] = m
	}
	m[sid] = sp
}
func (h *fakeHost) DetachProgress(rid RunnerID, sid SpanID) {
	if m, ok := h.progress[rid]; ok {
		delete(m, sid)
	}
}
func (h *fakeHost) EmitEnded(e Ended) { h.ended = append(h.ended, e) }

func mustSpan(t *testing.T, min, max time.Duration, minKind, maxKind BoundKind) TimeSpan {
	t.Helper()
	s, err := NewTimeSpan(TimeBound{Kind: minKind, Duration: min}, TimeBound{Kind: maxKind, Duration: max})
	if err != nil {
		t.Fatalf("unexpected span error: %v\n", err)
	}
	return s
}

// A big tick spanning three adjacent spans in one dispatch pass: all
// three receive progress in the same pass, each with its own (now,
// previous) relative to its own min. repeated stays None throughout (no
// repeat policy), so UseTime::Current applies uniformly — only the span
// containing the final cursor position (C) lands exactly at its own
// length; the earlier two read raw overshoot past their own length,
// since the dispatcher never synthesizes an intermediate sample for a
// single-period crossing.
func TestDispatchThreeSpansInOneBigTick(t *testing.T) {
	host := newFakeHost()
	runnerID := RunnerID(1)
	r := New(10 * time.Second)
	host.addRunner(runnerID, r)

	spanA := SpanID(1) // [0, 3)
	spanB := SpanID(2) // [3, 7)
	spanC := SpanID(3) // [7, 10]
	host.attachSpan(runnerID, spanA, mustSpan(t, 0, 3*time.Second, BoundInclusive, BoundExclusive))
	host.attachSpan(runnerID, spanB, mustSpan(t, 3*time.Second, 7*time.Second, BoundInclusive, BoundExclusive))
	host.attachSpan(runnerID, spanC, mustSpan(t, 7*time.Second, 10*time.Second, BoundInclusive, BoundInclusive))

	r.RawTick(10)

	d := NewDispatcher()
	d.Run(host)

	want := map[SpanID]float64{spanA: 10, spanB: 7, spanC: 3}
	for sid, wantNow := range want {
		sp, ok := host.Progress(runnerID, sid)
		if !ok {
			t.Fatalf("span %v did not receive progress\n", sid)
		}
		if !approxEqual(sp.Now, wantNow) {
			t.Errorf("span %v now=%v, want %v\n", sid, sp.Now, wantNow)
		}
	}
	// Only span C's cursor position coincides with its own exit edge.
	spC, _ := host.Progress(runnerID, spanC)
	if !approxEqual(spC.NowPercentage, 1) {
		t.Errorf("span C now_percentage=%v, want 1\n", spC.NowPercentage)
	}
}

// A single-period tick that sails through a zero-length span entirely:
// repeated stays None (no repeat policy configured) and the (Before,
// After) cell resolves to UseTime::Current, so the published `now` is
// the raw cursor position offset by the span's min — not pinned to an
// edge.
func TestDispatchZeroLengthSpanBigTick(t *testing.T) {
	host := newFakeHost()
	runnerID := RunnerID(1)
	r := New(4 * time.Second)
	host.addRunner(runnerID, r)

	span := SpanID(1)
	host.attachSpan(runnerID, span, mustSpan(t, 2*time.Second, 2*time.Second, BoundInclusive, BoundInclusive))

	r.RawTick(4)

	d := NewDispatcher()
	d.Run(host)

	sp, ok := host.Progress(runnerID, span)
	if !ok {
		t.Fatalf("expected a progress record to be attached\n")
	}
	if !approxEqual(sp.Now, 2) {
		t.Errorf("now=%v, want 2 (now=4 - span.min=2, via UseTime::Current)\n", sp.Now)
	}
	if !approxEqual(sp.Previous, -2) {
		t.Errorf("previous=%v, want -2\n", sp.Previous)
	}
	if sp.PreviousPercentage != math.Inf(-1) {
		t.Errorf("previous_percentage=%v, want -Inf\n", sp.PreviousPercentage)
	}
}

func TestDispatchDetachesOnSkip(t *testing.T) {
	host := newFakeHost()
	runnerID := RunnerID(1)
	r := New(5 * time.Second)
	host.addRunner(runnerID, r)
	span := SpanID(1)
	host.attachSpan(runnerID, span, mustSpan(t, 0, 5*time.Second, BoundInclusive, BoundInclusive))

	r.RawTick(1)
	d := NewDispatcher()
	d.Run(host)
	if _, ok := host.Progress(runnerID, span); !ok {
		t.Fatalf("expected progress after first pass\n")
	}

	host.skipped[runnerID] = true
	host.fresh = []RunnerID{runnerID}
	d.Run(host)
	if _, ok := host.Progress(runnerID, span); ok {
		t.Errorf("expected progress to be detached once runner is skipped\n")
	}
}

func TestTickPassEmitsEndedOnCompletion(t *testing.T) {
	host := newFakeHost()
	runnerID := RunnerID(1)
	r := New(5 * time.Second)
	host.addRunner(runnerID, r)

	TickPass(host, 5)

	if len(host.ended) != 1 {
		t.Fatalf("expected exactly one Ended event, got %d\n", len(host.ended))
	}
	if host.ended[0].Runner != runnerID {
		t.Errorf("wrong runner id on Ended: %v\n", host.ended[0].Runner)
	}
	if !host.ended[0].IsCompleted() {
		t.Errorf("Ended with no repeat policy should report IsCompleted\n")
	}
}
