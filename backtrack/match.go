package backtrack

// Span is a half-open byte range [Start, End) of the input.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Match is a successful search result.
//
// It holds the input by reference; Text and Captures slice it without copying.
//
// Example:
//
//	m, ok := backtrack.Search(syntax.MustCompile("(Hello), (World!)"), "Hello, World!")
//	// ok == true
//	// m.Text() == "Hello, World!"
//	// m.Captures() == []string{"Hello", "World!"}
type Match struct {
	input  string
	span   Span
	groups []Span
}

// Start returns the byte offset where the match begins.
func (m *Match) Start() int {
	return m.span.Start
}

// End returns the byte offset just past the match.
func (m *Match) End() int {
	return m.span.End
}

// Span returns the matched byte range.
func (m *Match) Span() Span {
	return m.span
}

// Text returns the matched text.
func (m *Match) Text() string {
	return m.input[m.span.Start:m.span.End]
}

// NumCaptures returns the number of recorded captures. A group inside a
// repeat records once per repetition; a group inside a skipped optional
// records nothing.
func (m *Match) NumCaptures() int {
	return len(m.groups)
}

// Capture returns the text of the i-th capture.
func (m *Match) Capture(i int) string {
	g := m.groups[i]
	return m.input[g.Start:g.End]
}

// CaptureSpan returns the byte range of the i-th capture.
func (m *Match) CaptureSpan(i int) Span {
	return m.groups[i]
}

// Captures returns the captured texts in group opening order.
// It never returns nil; a match without groups yields an empty slice.
func (m *Match) Captures() []string {
	out := make([]string, len(m.groups))
	for i, g := range m.groups {
		out[i] = m.input[g.Start:g.End]
	}
	return out
}
