package prefilter

// Tracker wraps a Prefilter and retires it when most candidates turn out
// not to match.
//
// A prefilter for a literal like "a" on text full of a's reports nearly
// every offset, and the scan then costs more than trying each offset
// directly. The tracker counts candidates and confirmed matches and, after
// a warm-up, turns itself off once the confirm ratio drops below the
// configured threshold. A Tracker is meant for a single search pass and is
// not safe for concurrent use.
//
//	tracker := prefilter.NewTracker(pf)
//	for start <= len(haystack) {
//	    if tracker.IsActive() {
//	        pos := tracker.Find(haystack, start)
//	        ...
//	    }
//	}
type Tracker struct {
	inner  Prefilter
	config TrackerConfig

	candidates     uint64
	confirms       uint64
	lastCheckpoint uint64
	active         bool
}

// TrackerConfig holds the tracker thresholds.
type TrackerConfig struct {
	// CheckInterval is how many candidates pass between checks. Default: 64.
	CheckInterval uint64

	// MinEfficiency is the lowest confirms/candidates ratio that keeps the
	// prefilter active. Default: 0.1.
	MinEfficiency float64

	// WarmupPeriod is the number of candidates seen before the first check.
	// Default: 128.
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker thresholds.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker wraps inner with the default thresholds. It returns nil for a
// nil prefilter.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps inner with custom thresholds.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{inner: inner, config: config, active: true}
}

// Find returns the next candidate, or -1 if there is none. It must not be
// called once the tracker is inactive.
func (t *Tracker) Find(haystack []byte, start int) int {
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.check()
	}
	return pos
}

// ConfirmMatch records that the last candidate was a real match. It is a
// no-op on a nil tracker.
func (t *Tracker) ConfirmMatch() {
	if t != nil {
		t.confirms++
	}
}

// IsActive reports whether the prefilter is still worth using. A nil
// tracker is never active.
func (t *Tracker) IsActive() bool {
	return t != nil && t.active
}

// Stats returns the counters and the current confirm ratio.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64) {
	if t.candidates > 0 {
		efficiency = float64(t.confirms) / float64(t.candidates)
	}
	return t.candidates, t.confirms, efficiency
}

func (t *Tracker) check() {
	if t.candidates < t.config.WarmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.config.CheckInterval {
		return
	}
	t.lastCheckpoint = t.candidates
	if float64(t.confirms)/float64(t.candidates) < t.config.MinEfficiency {
		t.active = false
	}
}
