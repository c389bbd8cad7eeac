// Package tinyre is a small backtracking regular expression engine.
//
// The dialect is deliberately narrow:
//
//	c      literal character (any rune other than the metacharacters below)
//	.      any character, including '\n'
//	^ $    start and end of the text (first and last position only)
//	x?     zero or one x, preferring one
//	x*     zero or more x, greedy
//	(...)  capture group
//	[...]  character class, with ranges (a-z) and negation ([^...])
//
// There is no alternation, no escaping and no flags; '+', '{' and '}' are
// ordinary characters.
//
// Search anchors the match at offset 0 of the text, the way the engine is
// defined. The Find* methods slide the start offset left to right and use a
// literal prefilter to skip offsets that cannot begin a match.
//
// Basic usage:
//
//	re := tinyre.MustCompile("(a*)(aaa)")
//	m := re.Search("aaaaaaa")
//	fmt.Println(m.Captures()) // [aaaa aaa]
//
//	re = tinyre.MustCompile("[0-9][0-9]*")
//	fmt.Println(re.FindAllString("age 42, height 180", -1)) // [42 180]
//
// Matching is backtracking search. A later failure revisits every earlier
// choice: '?' falls back to skipping its operand and '*' to fewer
// repetitions, and '*' always settles on the largest repetition count that
// lets the rest of the pattern match. Chains of optionals such as
// a?a?a?a?aaaa take exponential time in their length. Select BackendRE2 in
// Config for untrusted patterns or input.
package tinyre

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/tinyre/backtrack"
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/native"
	"github.com/coregx/tinyre/prefilter"
	"github.com/coregx/tinyre/syntax"
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// ResetStats.
type Regex struct {
	pattern *syntax.Pattern
	config  Config

	matcher *backtrack.Backtracker
	native  *native.Handle

	// prefilter is nil when the pattern has no usable prefix literals or is
	// anchored at the start.
	prefilter prefilter.Prefilter
	// literalOnly is set when a prefilter hit is the whole match.
	literalOnly bool

	stats Stats
}

// Stats holds search counters. All fields are updated atomically.
type Stats struct {
	// Searches counts calls to Search and the Find* methods.
	Searches uint64

	// Attempts counts match attempts at a single start offset.
	Attempts uint64

	// PrefilterCandidates counts offsets reported by the prefilter.
	PrefilterCandidates uint64

	// PrefilterConfirms counts prefilter candidates where a match started.
	PrefilterConfirms uint64

	// PrefilterMisses counts prefilter candidates that did not match.
	PrefilterMisses uint64

	// PrefilterAbandoned counts searches that retired the prefilter for
	// reporting too many false candidates.
	PrefilterAbandoned uint64

	// LiteralMatches counts matches taken from the prefilter alone.
	LiteralMatches uint64

	// NativeSearches counts searches run on RE2.
	NativeSearches uint64
}

// Compile compiles a pattern with the default configuration.
//
// The error, if any, is a *syntax.Error.
//
// Example:
//
//	re, err := tinyre.Compile("Hel?o,")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := tinyre.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := tinyre.CompileWithConfig("[0-9]*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p, err := syntax.Compile(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{pattern: p, config: config}
	switch config.Backend {
	case BackendRE2:
		re.native, err = native.Compile(p.Nodes())
		if err != nil {
			return nil, err
		}
	default:
		re.matcher = backtrack.NewBacktracker(p)
	}

	if config.EnablePrefilter && !p.AnchoredStart() {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
			MaxClassSize:  config.MaxClassSize,
		})
		re.prefilter = prefilter.NewBuilder(extractor.ExtractPrefixes(p.Nodes())).Build()
		re.literalOnly = re.prefilter != nil && re.prefilter.IsComplete() && p.NumGroups() == 0
	}
	return re, nil
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern.String()
}

// NumSubexp returns the number of capture groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.pattern.NumGroups()
}

// Backend returns the engine running the pattern.
func (r *Regex) Backend() Backend {
	return r.config.Backend
}

// Prefilter names the prefilter strategy used by the Find* methods, or
// "none".
func (r *Regex) Prefilter() string {
	return prefilter.Strategy(r.prefilter)
}

// Stats returns a snapshot of the search counters.
func (r *Regex) Stats() Stats {
	return Stats{
		Searches:            atomic.LoadUint64(&r.stats.Searches),
		Attempts:            atomic.LoadUint64(&r.stats.Attempts),
		PrefilterCandidates: atomic.LoadUint64(&r.stats.PrefilterCandidates),
		PrefilterConfirms:   atomic.LoadUint64(&r.stats.PrefilterConfirms),
		PrefilterMisses:     atomic.LoadUint64(&r.stats.PrefilterMisses),
		PrefilterAbandoned:  atomic.LoadUint64(&r.stats.PrefilterAbandoned),
		LiteralMatches:      atomic.LoadUint64(&r.stats.LiteralMatches),
		NativeSearches:      atomic.LoadUint64(&r.stats.NativeSearches),
	}
}

// ResetStats zeroes the search counters. It must not run concurrently with
// searches.
func (r *Regex) ResetStats() {
	r.stats = Stats{}
}

// Search matches the pattern at offset 0 of text and returns the match, or
// nil. It never retries from a later offset: "World" does not match
// "Hello, World".
func (r *Regex) Search(text string) *Match {
	atomic.AddUint64(&r.stats.Searches, 1)
	if r.native != nil {
		atomic.AddUint64(&r.stats.NativeSearches, 1)
		m, ok := r.native.Search(text)
		if !ok {
			return nil
		}
		return newNativeMatch(m)
	}
	m, _ := r.matchAt(text, 0)
	return m
}

// MatchString reports whether the pattern matches anywhere in s.
func (r *Regex) MatchString(s string) bool {
	return r.find(s) != nil
}

// FindString returns the text of the leftmost match in s, or "" if there is
// none. Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	if m := r.find(s); m != nil {
		return m.Text()
	}
	return ""
}

// FindStringIndex returns the byte bounds of the leftmost match in s, or nil.
func (r *Regex) FindStringIndex(s string) []int {
	if m := r.find(s); m != nil {
		return []int{m.Start(), m.End()}
	}
	return nil
}

// FindStringSubmatch returns the leftmost match in s followed by its
// captures, or nil. With the backtracking backend a group inside '*'
// contributes one capture per iteration, so the slice may be longer than
// NumSubexp()+1; a group that did not take part contributes nothing.
func (r *Regex) FindStringSubmatch(s string) []string {
	m := r.find(s)
	if m == nil {
		return nil
	}
	return append([]string{m.Text()}, m.Captures()...)
}

// FindAllString returns successive non-overlapping matches in s, at most n
// of them (all if n < 0). As in package regexp, an empty match directly
// after the previous match is skipped.
func (r *Regex) FindAllString(s string, n int) []string {
	var out []string
	for _, m := range r.findAll(s, n) {
		out = append(out, m.Text())
	}
	return out
}

// FindAllStringIndex is like FindAllString but returns byte bounds.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	var out [][]int
	for _, m := range r.findAll(s, n) {
		out = append(out, []int{m.Start(), m.End()})
	}
	return out
}

// find returns the leftmost match in s.
func (r *Regex) find(s string) *Match {
	atomic.AddUint64(&r.stats.Searches, 1)
	if r.native != nil {
		atomic.AddUint64(&r.stats.NativeSearches, 1)
		m, ok := r.native.Find(s)
		if !ok {
			return nil
		}
		return newNativeMatch(m)
	}
	sc := r.newScanner(s)
	m, _ := sc.next(0)
	sc.finish()
	return m
}

func (r *Regex) findAll(s string, n int) []*Match {
	if n == 0 {
		return nil
	}
	atomic.AddUint64(&r.stats.Searches, 1)
	if r.native != nil {
		atomic.AddUint64(&r.stats.NativeSearches, 1)
		all := r.native.FindAll(s, n)
		out := make([]*Match, 0, len(all))
		for _, m := range all {
			out = append(out, newNativeMatch(m))
		}
		return out
	}

	var out []*Match
	sc := r.newScanner(s)
	defer sc.finish()
	pos, prevEnd := 0, -1
	for (n < 0 || len(out) < n) && pos <= len(s) {
		m, ok := sc.next(pos)
		if !ok {
			break
		}
		accept := true
		if m.End() == pos {
			// Empty match at the search position: step over one rune so
			// the scan makes progress.
			if m.Start() == prevEnd {
				accept = false
			}
			pos += runeWidth(s, pos)
		} else {
			pos = m.End()
		}
		prevEnd = m.End()
		if accept {
			out = append(out, m)
		}
	}
	return out
}

// matchAt runs the backtracker at exactly offset start.
func (r *Regex) matchAt(text string, start int) (*Match, bool) {
	atomic.AddUint64(&r.stats.Attempts, 1)
	m, ok := r.matcher.SearchAt(text, start)
	if !ok {
		return nil, false
	}
	return newMatch(m), true
}

// runeWidth returns the width of the rune at s[pos:], at least 1.
func runeWidth(s string, pos int) int {
	if pos >= len(s) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[pos:])
	return size
}
