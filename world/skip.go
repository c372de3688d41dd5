package world

// IsSkipped implements timerunner.Host.
func (w *World) IsSkipped(id RunnerID) bool { return w.skipped[id] }

// Skip attaches the SkipTimeRunner marker to a runner. It is idempotent:
// skipping an already-skipped runner does not requeue it for the
// dispatcher's freshly-skipped pass.
func (w *World) Skip(id RunnerID) {
	if w.skipped[id] {
		return
	}
	w.skipped[id] = true
	w.freshSkip = append(w.freshSkip, id)
}

// Unskip removes the marker, letting the runner produce progress again
// from the next dispatch pass.
func (w *World) Unskip(id RunnerID) {
	delete(w.skipped, id)
}

// DrainFreshlySkipped implements timerunner.Host: it returns and clears
// the set of runners that gained the Skip marker since the last call.
func (w *World) DrainFreshlySkipped() []RunnerID {
	f := w.freshSkip
	w.freshSkip = nil
	return f
}
