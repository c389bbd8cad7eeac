package tinyre

import (
	"sync/atomic"

	"github.com/coregx/tinyre/prefilter"
)

// scanner finds leftmost matches for the backtracking backend. It owns the
// prefilter tracker for one Find* call and is not shared between goroutines.
type scanner struct {
	re       *Regex
	text     string
	haystack []byte
	tracker  *prefilter.Tracker
}

func (r *Regex) newScanner(s string) *scanner {
	sc := &scanner{re: r, text: s}
	if r.prefilter != nil {
		sc.haystack = []byte(s)
		sc.tracker = prefilter.NewTracker(r.prefilter)
	}
	return sc
}

// next returns the leftmost match starting at or after start.
func (sc *scanner) next(start int) (*Match, bool) {
	r := sc.re
	if r.pattern.AnchoredStart() {
		if start != 0 {
			return nil, false
		}
		return r.matchAt(sc.text, 0)
	}
	if r.literalOnly {
		return sc.literal(start)
	}

	for pos := start; pos <= len(sc.text); {
		filtered := sc.tracker.IsActive()
		if filtered {
			candidate := sc.tracker.Find(sc.haystack, pos)
			if candidate < 0 {
				// Every match starts with a non-empty literal.
				return nil, false
			}
			pos = candidate
		}
		if m, ok := r.matchAt(sc.text, pos); ok {
			if filtered {
				sc.tracker.ConfirmMatch()
			}
			return m, true
		}
		if filtered {
			atomic.AddUint64(&r.stats.PrefilterMisses, 1)
		}
		pos += runeWidth(sc.text, pos)
	}
	return nil, false
}

// literal returns the next prefilter hit as the match itself. It serves
// patterns whose literals are the complete match text and that have no
// groups.
func (sc *scanner) literal(start int) (*Match, bool) {
	pf := sc.re.prefilter
	begin, end := -1, -1
	if mf, ok := pf.(prefilter.MatchFinder); ok {
		begin, end = mf.FindMatch(sc.haystack, start)
	} else if begin = pf.Find(sc.haystack, start); begin >= 0 {
		end = begin + pf.LiteralLen()
	}
	if begin < 0 {
		return nil, false
	}
	atomic.AddUint64(&sc.re.stats.LiteralMatches, 1)
	return &Match{start: begin, end: end, text: sc.text[begin:end], captures: []string{}}, true
}

// finish folds the tracker's counters into the regex stats and records
// whether it retired the prefilter.
func (sc *scanner) finish() {
	if sc.tracker == nil {
		return
	}
	candidates, confirms, _ := sc.tracker.Stats()
	atomic.AddUint64(&sc.re.stats.PrefilterCandidates, candidates)
	atomic.AddUint64(&sc.re.stats.PrefilterConfirms, confirms)
	if !sc.tracker.IsActive() {
		atomic.AddUint64(&sc.re.stats.PrefilterAbandoned, 1)
	}
}
