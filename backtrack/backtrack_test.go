package backtrack

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/tinyre/syntax"
)

type searchCase struct {
	pattern  string
	input    string
	want     bool
	text     string
	captures []string
}

func runSearchCases(t *testing.T, tests []searchCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			p, err := syntax.Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.pattern, err)
			}
			m, ok := Search(p, tt.input)
			if ok != tt.want {
				t.Fatalf("Search(%q, %q) ok = %v, want %v", tt.pattern, tt.input, ok, tt.want)
			}
			if !ok {
				if m != nil {
					t.Errorf("failed search returned non-nil match")
				}
				return
			}
			if m.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", m.Text(), tt.text)
			}
			want := tt.captures
			if want == nil {
				want = []string{}
			}
			if diff := cmp.Diff(want, m.Captures()); diff != "" {
				t.Errorf("Captures() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLiteralPrefix(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "Hello, World!", input: "Hello, World!", want: true, text: "Hello, World!"},
		{pattern: "Hello, World!", input: "Hello, World!\r\n", want: true, text: "Hello, World!"},
		{pattern: "Hello, World!", input: "Hello, ", want: false},
		{pattern: "World", input: "Hello, World", want: false},
		{pattern: "", input: "anything", want: true, text: ""},
		{pattern: "", input: "", want: true, text: ""},
		{pattern: "a", input: "", want: false},
		{pattern: "héllo", input: "héllo wörld", want: true, text: "héllo"},
	})
}

func TestOptional(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "Hel?o,", input: "Heo,", want: true, text: "Heo,"},
		{pattern: "Hel?o,", input: "Helo,", want: true, text: "Helo,"},
		{pattern: "Hel?o,", input: "Hello,", want: false},
		{pattern: "a?a", input: "a", want: true, text: "a"},
		{pattern: "ab?", input: "a", want: true, text: "a"},
		{pattern: "ab?", input: "ab", want: true, text: "ab"},
	})
}

func TestRepeat(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "Hel*o,", input: "Heo,", want: true, text: "Heo,"},
		{pattern: "Hel*o,", input: "Helo,", want: true, text: "Helo,"},
		{pattern: "Hel*o,", input: "Hello,", want: true, text: "Hello,"},
		{pattern: "Hel*o,", input: "Helllo,", want: true, text: "Helllo,"},
		{pattern: "a*aaa", input: "aaaaaaa", want: true, text: "aaaaaaa"},
		{pattern: "a*aaa", input: "aa", want: false},
		{pattern: "a*", input: "", want: true, text: ""},
		{pattern: "a*", input: "bbb", want: true, text: ""},
		{pattern: ".*b", input: "abab", want: true, text: "abab"},
		{pattern: ".*", input: "line\nnext", want: true, text: "line\nnext"},
		{pattern: "()*x", input: "x", want: true, text: "x"},
		{pattern: "a**b", input: "aaab", want: true, text: "aaab"},
	})
}

func TestAnchors(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "^Hello, World!$", input: "Hello, World!", want: true, text: "Hello, World!"},
		{pattern: "^Hello, World!$", input: "Hello, ", want: false},
		{pattern: "^Hello, World!$", input: "Hello, World!\r\n", want: false},
		{pattern: "^$", input: "", want: true, text: ""},
		{pattern: "^$", input: "x", want: false},
		{pattern: "$", input: "", want: true, text: ""},
		{pattern: "a*$", input: "aaa", want: true, text: "aaa"},
	})
}

func TestGroups(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "(Hello), (World!)", input: "Hello, World!", want: true, text: "Hello, World!", captures: []string{"Hello", "World!"}},
		{pattern: "(a*)(aaa)", input: "aaaaaaa", want: true, text: "aaaaaaa", captures: []string{"aaaa", "aaa"}},
		{pattern: "(a*)", input: "bbb", want: true, text: "", captures: []string{""}},
		{pattern: "()", input: "", want: true, text: "", captures: []string{""}},
		{pattern: "((a)b)", input: "ab", want: true, text: "ab", captures: []string{"ab", "a"}},
		{pattern: "((a)(b))(c)", input: "abc", want: true, text: "abc", captures: []string{"ab", "a", "b", "c"}},
		{pattern: "(a)*", input: "aaa", want: true, text: "aaa", captures: []string{"a", "a", "a"}},
		{pattern: "(a)?b", input: "b", want: true, text: "b"},
		{pattern: "(a)?b", input: "ab", want: true, text: "ab", captures: []string{"a"}},
		// Two repetitions of (a*) beat one.
		{pattern: "(a*)*b", input: "aab", want: true, text: "aab", captures: []string{"a", "a"}},
		{pattern: "(.*),(.*)", input: "x,y,z", want: true, text: "x,y,z", captures: []string{"x,y", "z"}},
	})
}

// TestZeroWidthAtEndOfInput covers nodes that may still succeed once every
// character is consumed: repeats and optionals fall back to zero
// occurrences, and anchors are checked by position alone.
func TestZeroWidthAtEndOfInput(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "a*", input: "", want: true, text: ""},
		{pattern: "a?", input: "", want: true, text: ""},
		{pattern: "^$", input: "", want: true, text: ""},
		{pattern: "^", input: "", want: true, text: ""},
		{pattern: "ab*", input: "a", want: true, text: "a"},
		{pattern: "ab?$", input: "a", want: true, text: "a"},
		{pattern: "(b*)", input: "", want: true, text: "", captures: []string{""}},
		{pattern: "a.*", input: "a", want: true, text: "a"},
		{pattern: "a.", input: "a", want: false},
	})
}

// TestBacktrackingAcrossNodes covers choices revisited after a later node
// fails: an optional that matched gives its characters back, and so does a
// repeat or optional inside a group that has already been closed.
func TestBacktrackingAcrossNodes(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "a?ab", input: "ab", want: true, text: "ab"},
		{pattern: "(a)?ab", input: "ab", want: true, text: "ab"},
		{pattern: "(a?)(ab)", input: "ab", want: true, text: "ab", captures: []string{"", "ab"}},
		{pattern: "(a*)a", input: "aa", want: true, text: "aa", captures: []string{"a"}},
		{pattern: "((a*)b?)ab", input: "aab", want: true, text: "aab", captures: []string{"a", "a"}},
		{pattern: "a?a?aa", input: "aa", want: true, text: "aa"},
	})
}

func TestCharClass(t *testing.T) {
	runSearchCases(t, []searchCase{
		{pattern: "[abcdef]*$", input: "bacca", want: true, text: "bacca"},
		{pattern: "[abcdef]*$", input: "baxca", want: false},
		{pattern: "[^abc]*, ", input: "Hello, a", want: true, text: "Hello, "},
		{pattern: "[0-9]*", input: "42 Hellos", want: true, text: "42"},
		{pattern: "[]", input: "a", want: false},
		{pattern: "[^]", input: "a", want: true, text: "a"},
		{pattern: "[^]", input: "", want: false},
		{pattern: "[a-]*", input: "a-a-b", want: true, text: "a-a-"},
		{pattern: "[é]", input: "é", want: true, text: "é"},
	})
}

func TestSearchAt(t *testing.T) {
	b := NewBacktracker(syntax.MustCompile("[0-9]*"))

	m, ok := b.SearchAt("age 42", 4)
	if !ok || m.Text() != "42" || m.Start() != 4 || m.End() != 6 {
		t.Fatalf("SearchAt(4) = %+v, %v", m, ok)
	}

	if _, ok := b.SearchAt("age", 4); ok {
		t.Error("SearchAt past end matched")
	}
	if _, ok := b.SearchAt("age", -1); ok {
		t.Error("SearchAt(-1) matched")
	}

	anchored := NewBacktracker(syntax.MustCompile("^a"))
	if _, ok := anchored.SearchAt("aa", 1); ok {
		t.Error("^a matched at offset 1")
	}
	if _, ok := anchored.SearchAt("aa", 0); !ok {
		t.Error("^a did not match at offset 0")
	}
}

func TestCaptureSpans(t *testing.T) {
	m, ok := Search(syntax.MustCompile("x(é+)?(y)"), "xy")
	if !ok {
		t.Fatal("no match")
	}
	if m.NumCaptures() != 1 {
		t.Fatalf("NumCaptures() = %d, want 1", m.NumCaptures())
	}
	if got := m.CaptureSpan(0); got != (Span{Start: 1, End: 2}) {
		t.Errorf("CaptureSpan(0) = %+v", got)
	}
	if m.Capture(0) != "y" {
		t.Errorf("Capture(0) = %q", m.Capture(0))
	}
}

// TestRepeatIsGreedyLongest sweeps every repetition count: for (a*)(suffix)
// the captured run must be the largest k for which suffix matches right after
// k characters of 'a'.
func TestRepeatIsGreedyLongest(t *testing.T) {
	suffixes := []string{"", "a", "aa", "aaa", "b", "ab", "aab", "ba"}
	var inputs []string
	for n := 0; n <= 6; n++ {
		for _, tail := range []string{"", "b", "ab", "ba", "bb"} {
			inputs = append(inputs, strings.Repeat("a", n)+tail)
		}
	}

	for _, suffix := range suffixes {
		p := syntax.MustCompile("(a*)(" + suffix + ")")
		for _, input := range inputs {
			run := len(input) - len(strings.TrimLeft(input, "a"))
			want := -1
			for k := run; k >= 0; k-- {
				if strings.HasPrefix(input[k:], suffix) {
					want = k
					break
				}
			}

			m, ok := Search(p, input)
			if want < 0 {
				if ok {
					t.Errorf("(a*)(%s) on %q matched %q, want no match", suffix, input, m.Text())
				}
				continue
			}
			if !ok {
				t.Errorf("(a*)(%s) on %q: no match, want k=%d", suffix, input, want)
				continue
			}
			if got := len(m.Capture(0)); got != want {
				t.Errorf("(a*)(%s) on %q: k=%d, want %d", suffix, input, got, want)
			}
		}
	}
}

// repeatCounts returns the largest k such that k pieces drawn from forms
// cover input[:p] for some p where input[p:] starts with suffix, or -1.
func repeatCounts(input string, forms []string, suffix string) int {
	best := -1
	reach := map[int]bool{0: true}
	for k := 0; len(reach) > 0; k++ {
		next := make(map[int]bool)
		for p := range reach {
			if strings.HasPrefix(input[p:], suffix) {
				best = k
			}
			for _, f := range forms {
				if strings.HasPrefix(input[p:], f) {
					next[p+len(f)] = true
				}
			}
		}
		reach = next
	}
	return best
}

// TestRepeatWithChoiceIsGreedyLongest repeats a group that has a choice of
// its own and checks, over every input up to length 6 on {a, b}, that the
// number of iterations is the largest count after which the suffix matches.
func TestRepeatWithChoiceIsGreedyLongest(t *testing.T) {
	subs := []struct {
		pattern string
		forms   []string
	}{
		{"(aa?)", []string{"aa", "a"}},
		{"(ab?)", []string{"ab", "a"}},
		{"(a?b)", []string{"ab", "b"}},
	}
	suffixes := []string{"", "a", "b", "aa", "ab", "ba", "aab"}
	inputs := []string{""}
	for n, frontier := 0, []string{""}; n < 6; n++ {
		var grown []string
		for _, in := range frontier {
			grown = append(grown, in+"a", in+"b")
		}
		inputs = append(inputs, grown...)
		frontier = grown
	}

	for _, sub := range subs {
		for _, suffix := range suffixes {
			pattern := sub.pattern + "*(" + suffix + ")"
			p := syntax.MustCompile(pattern)
			for _, input := range inputs {
				want := repeatCounts(input, sub.forms, suffix)
				m, ok := Search(p, input)
				if want < 0 {
					if ok {
						t.Errorf("%s on %q matched %q, want no match", pattern, input, m.Text())
					}
					continue
				}
				if !ok {
					t.Errorf("%s on %q: no match, want k=%d", pattern, input, want)
					continue
				}
				caps := m.Captures()
				if got := len(caps) - 1; got != want {
					t.Errorf("%s on %q: k=%d (%q), want %d", pattern, input, got, caps, want)
					continue
				}
				if caps[want] != suffix || strings.Join(caps, "") != m.Text() {
					t.Errorf("%s on %q: captures %q do not tile %q", pattern, input, caps, m.Text())
				}
			}
		}
	}
}

func TestPatternNotMutated(t *testing.T) {
	p := syntax.MustCompile("(a*)(b?)[cd]*$")
	before := syntax.Format(p.Nodes())
	for _, input := range []string{"aabcd", "x", "", "aaaa"} {
		Search(p, input)
	}
	if after := syntax.Format(p.Nodes()); after != before {
		t.Errorf("pattern changed from %q to %q", before, after)
	}
}

func TestConcurrentSearch(t *testing.T) {
	b := NewBacktracker(syntax.MustCompile("(a*)(aaa)"))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			input := strings.Repeat("a", 3+n)
			m, ok := b.Search(input)
			if !ok {
				t.Errorf("no match on %q", input)
				return
			}
			if got := m.Captures(); got[0] != strings.Repeat("a", n) || got[1] != "aaa" {
				t.Errorf("captures on %q = %q", input, got)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkSearch(b *testing.B) {
	p := syntax.MustCompile("(a*)(aaa)")
	input := strings.Repeat("a", 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Search(p, input)
	}
}
